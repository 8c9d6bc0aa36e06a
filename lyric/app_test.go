package lyric

import (
	"testing"
	"time"

	"github.com/elizafairlady/go-appdemos/proto"
	"github.com/elizafairlady/go-appdemos/speech"
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

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	if cfg.CurrentUser == "" {
		cfg.CurrentUser = "you"
	}
	if cfg.PlaybackPeriod == 0 {
		cfg.PlaybackPeriod = tick
	}
	if cfg.MessageTTL == 0 {
		cfg.MessageTTL = tick
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestPlaybackCursor(t *testing.T) {
	a := newTestApp(t, Config{})
	a.Handle(action("open").With("id", "s1")) // three lines
	a.Handle(action("play"))
	if a.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", a.Cursor())
	}
	waitFor(t, func() bool { return a.Cursor() >= 1 })
	waitFor(t, func() bool { return a.Cursor() == -1 })
}

func TestCloseStopsPlayback(t *testing.T) {
	a := newTestApp(t, Config{})
	a.Handle(action("open").With("id", "s1"))
	a.Handle(action("play"))
	a.Handle(action("close"))
	if a.Cursor() != -1 {
		t.Errorf("Cursor = %d after close", a.Cursor())
	}
	time.Sleep(4 * tick)
	if a.Cursor() != -1 {
		t.Error("a step landed after close")
	}
}

func TestSpeakNoVoiceDegrades(t *testing.T) {
	a := newTestApp(t, Config{}) // defaults to speech.Null
	a.Handle(action("open").With("id", "s1"))
	a.Handle(action("speak"))
	if got := a.Notice(); got != "speech is not available on this device" {
		t.Errorf("Notice = %q", got)
	}
	if a.Cursor() != -1 {
		t.Errorf("Cursor = %d", a.Cursor())
	}
}

func TestSpeakDrivesCursor(t *testing.T) {
	fake := &speech.Fake{}
	a := newTestApp(t, Config{Synth: fake})
	a.Handle(action("open").With("id", "s2"))
	a.Handle(action("speak"))
	if a.Cursor() != 0 {
		t.Fatalf("Cursor = %d", a.Cursor())
	}
	if len(fake.Spoken()) != 1 {
		t.Fatalf("Spoken = %v", fake.Spoken())
	}
	fake.Boundary(2)
	if a.Cursor() != 2 {
		t.Errorf("Cursor = %d, want 2", a.Cursor())
	}
	fake.Finish()
	if a.Cursor() != -1 {
		t.Errorf("Cursor = %d after finish", a.Cursor())
	}
}

func TestSpeakStopsPlayback(t *testing.T) {
	fake := &speech.Fake{}
	a := newTestApp(t, Config{Synth: fake, PlaybackPeriod: time.Hour})
	a.Handle(action("open").With("id", "s1"))
	a.Handle(action("play"))
	a.Handle(action("speak"))
	if a.playback.Active() {
		t.Error("playback driver still active after speak")
	}
	// the cursor now follows the voice, nothing else moves it
	fake.Boundary(2)
	if a.Cursor() != 2 {
		t.Errorf("Cursor = %d, want 2", a.Cursor())
	}
	time.Sleep(4 * tick)
	if a.Cursor() != 2 {
		t.Errorf("Cursor = %d, another driver moved it", a.Cursor())
	}
}

func TestPlayCancelsSpeech(t *testing.T) {
	fake := &speech.Fake{}
	a := newTestApp(t, Config{Synth: fake, PlaybackPeriod: time.Hour})
	a.Handle(action("open").With("id", "s1"))
	a.Handle(action("speak"))
	a.Handle(action("play"))
	if fake.Cancels() != 1 {
		t.Errorf("Cancels = %d", fake.Cancels())
	}
	// a stale boundary report cannot move the cursor back
	fake.Boundary(2)
	if a.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", a.Cursor())
	}
}

func TestCloseCancelsSpeech(t *testing.T) {
	fake := &speech.Fake{}
	a := newTestApp(t, Config{Synth: fake})
	a.Handle(action("open").With("id", "s2"))
	a.Handle(action("speak"))
	a.Handle(action("close"))
	if fake.Cancels() != 1 {
		t.Errorf("Cancels = %d", fake.Cancels())
	}
	fake.Boundary(1)
	if a.Cursor() != -1 {
		t.Errorf("Cursor = %d, boundary landed after close", a.Cursor())
	}
}

func TestStopActionCancelsBoth(t *testing.T) {
	fake := &speech.Fake{}
	a := newTestApp(t, Config{Synth: fake})
	a.Handle(action("open").With("id", "s1"))
	a.Handle(action("play"))
	a.Handle(action("speak"))
	a.Handle(action("stop"))
	if a.Cursor() != -1 || a.playback.Active() {
		t.Errorf("Cursor = %d, Active = %v", a.Cursor(), a.playback.Active())
	}
	if fake.Cancels() == 0 {
		t.Error("synth not cancelled")
	}
}

func TestPreferencesPersist(t *testing.T) {
	st := storage.NewMemStore()
	a := newTestApp(t, Config{Store: st})
	a.Handle(action("dark").With("on", "true"))
	a.Handle(action("font").With("scale", "1.5"))
	a.Handle(action("fav").With("id", "s3"))
	a.Handle(action("download").With("id", "s2"))

	b := newTestApp(t, Config{Store: st})
	if !b.Dark() {
		t.Error("dark flag not restored")
	}
	if got := b.FontScale(); got != 1.5 {
		t.Errorf("FontScale = %g", got)
	}
	if !b.Model().Favorites.Has("s3") {
		t.Error("favorites not restored")
	}
	if !b.Model().Downloads.Has("s2") {
		t.Error("downloads not restored")
	}
}

func TestMalformedPreferencesFallBack(t *testing.T) {
	st := storage.NewMemStore()
	st.Set("lyric/dark", "maybe")
	st.Set("lyric/fontScale", "huge")
	st.Set("lyric/favorites", "[broken")
	a := newTestApp(t, Config{Store: st})
	if a.Dark() {
		t.Error("malformed dark flag read as true")
	}
	if got := a.FontScale(); got != DefaultFontScale {
		t.Errorf("FontScale = %g", got)
	}
	if got := a.Model().Favorites.Len(); got != 0 {
		t.Errorf("Favorites.Len = %d", got)
	}
}

func TestInvalidFontScaleRejected(t *testing.T) {
	a := newTestApp(t, Config{})
	a.Handle(action("font").With("scale", "-2"))
	if got := a.FontScale(); got != DefaultFontScale {
		t.Errorf("FontScale = %g", got)
	}
	if a.Notice() == "" {
		t.Error("no notice for invalid scale")
	}
}

func TestRateActionBadScore(t *testing.T) {
	a := newTestApp(t, Config{})
	a.Handle(action("rate").With("id", "s1").With("score", "9"))
	s, _ := a.Model().Song("s1")
	if s.Ratings.Count() != 0 {
		t.Error("out-of-range score recorded")
	}
	if a.Notice() == "" {
		t.Error("no notice for bad score")
	}
}
