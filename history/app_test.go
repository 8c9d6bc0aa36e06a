package history

import (
	"testing"
	"time"

	"github.com/elizafairlady/go-appdemos/proto"
	"github.com/elizafairlady/go-appdemos/storage"
)

const tick = 20 * time.Millisecond

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition never held")
}

func action(kind string) *proto.Action { return proto.New(kind) }

func newTestApp(t *testing.T, st storage.Store) *App {
	t.Helper()
	a, err := New(Config{
		CurrentUser:     "you",
		Store:           st,
		NarrationPeriod: tick,
		FeedbackDelay:   tick,
		MessageTTL:      tick,
	})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestNarrationAdvancesAndFinishes(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(action("open").With("id", "h1")) // three sentences
	a.Handle(action("narrate"))
	if a.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", a.Cursor())
	}
	waitFor(t, func() bool { return a.Cursor() >= 1 })
	// runs to the end and goes idle
	waitFor(t, func() bool { return a.Cursor() == -1 })
	if a.narration.Active() {
		t.Error("driver still active after the last sentence")
	}
}

func TestCloseStopsNarration(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(action("open").With("id", "h1"))
	a.Handle(action("narrate"))
	a.Handle(action("close"))

	if a.Cursor() != -1 {
		t.Errorf("Cursor = %d after close", a.Cursor())
	}
	// no step ever lands after teardown
	time.Sleep(4 * tick)
	if a.Cursor() != -1 {
		t.Errorf("Cursor = %d, a step landed after close", a.Cursor())
	}

	// a fresh open starts narration from sentence zero
	a.Handle(action("open").With("id", "h1"))
	a.Handle(action("narrate"))
	if a.Cursor() != 0 {
		t.Errorf("Cursor = %d on reopen, want 0", a.Cursor())
	}
}

func TestStopActionGoesIdle(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(action("open").With("id", "h2"))
	a.Handle(action("narrate"))
	a.Handle(action("stop"))
	if a.Cursor() != -1 || a.narration.Active() {
		t.Errorf("Cursor = %d, Active = %v", a.Cursor(), a.narration.Active())
	}
}

func TestQuizFullAttempt(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(action("open").With("id", "h1")) // two questions

	a.Handle(action("answer").With("choice", "0")) // correct
	q := a.Model().Quiz
	if !q.Locked || !q.LastCorrect || q.Score != 1 {
		t.Fatalf("Quiz = %+v", q)
	}
	// locked: a second answer is ignored
	a.Handle(action("answer").With("choice", "1"))
	if got := a.Model().Quiz.Score; got != 1 {
		t.Errorf("Score = %d after locked answer", got)
	}

	waitFor(t, func() bool { return a.Model().Quiz.Index == 1 })

	a.Handle(action("answer").With("choice", "0")) // wrong (answer is 1)
	waitFor(t, func() bool { return a.Model().Quiz.Completed })
	if got := a.Model().Quiz.Score; got != 1 {
		t.Errorf("final Score = %d", got)
	}
}

func TestRetryRestartsAttempt(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(action("open").With("id", "h2")) // one question
	a.Handle(action("answer").With("choice", "1"))
	waitFor(t, func() bool { return a.Model().Quiz.Completed })

	a.Handle(action("retry"))
	if got := a.Model().Quiz; got != (Quiz{}) {
		t.Errorf("Quiz = %+v after retry", got)
	}
	// the attempt is live again
	a.Handle(action("answer").With("choice", "1"))
	if got := a.Model().Quiz.Score; got != 1 {
		t.Errorf("Score = %d on second attempt", got)
	}
}

func TestCloseResetsQuiz(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(action("open").With("id", "h1"))
	a.Handle(action("answer").With("choice", "0"))
	a.Handle(action("close"))

	// the armed feedback delay was owned by the surface; no advance
	time.Sleep(4 * tick)
	if got := a.Model().Quiz; got != (Quiz{}) {
		t.Errorf("Quiz = %+v after close", got)
	}
}

func TestFavoritePersists(t *testing.T) {
	st := storage.NewMemStore()
	a := newTestApp(t, st)
	a.Handle(action("fav").With("id", "h3"))
	if got := storage.IDList(st, "history/favorites"); len(got) != 1 || got[0] != "h3" {
		t.Errorf("persisted = %v", got)
	}

	b := newTestApp(t, st)
	if !b.Model().Favorites.Has("h3") {
		t.Error("favorites not restored")
	}
}

func TestMalformedFavoritesStartEmpty(t *testing.T) {
	st := storage.NewMemStore()
	st.Set("history/favorites", "not json at all")
	a := newTestApp(t, st)
	if got := a.Model().Favorites.Len(); got != 0 {
		t.Errorf("Favorites.Len = %d", got)
	}
}

func TestFavoriteUnknownEventIgnored(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(action("fav").With("id", "nope"))
	if got := a.Model().Favorites.Len(); got != 0 {
		t.Errorf("Favorites.Len = %d", got)
	}
}

func TestAnswerOutOfRangeIgnored(t *testing.T) {
	a := newTestApp(t, nil)
	a.Handle(action("open").With("id", "h1"))
	a.Handle(action("answer").With("choice", "9"))
	a.Handle(action("answer").With("choice", "-1"))
	a.Handle(action("answer").With("choice", "two"))
	if got := a.Model().Quiz; got != (Quiz{}) {
		t.Errorf("Quiz = %+v", got)
	}
}
