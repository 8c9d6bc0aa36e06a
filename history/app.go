package history

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/elizafairlady/go-appdemos/entity"
	"github.com/elizafairlady/go-appdemos/notify"
	"github.com/elizafairlady/go-appdemos/proto"
	"github.com/elizafairlady/go-appdemos/speech"
	"github.com/elizafairlady/go-appdemos/storage"
	"github.com/elizafairlady/go-appdemos/surface"
	"github.com/elizafairlady/go-appdemos/timer"
	"github.com/elizafairlady/go-appdemos/view"
)

const favoritesKey = "history/favorites"

// Defaults for the timing knobs.
const (
	DefaultNarrationPeriod = 2 * time.Second
	DefaultFeedbackDelay   = 900 * time.Millisecond
)

// Config configures a history App.
type Config struct {
	// CurrentUser is the identity favorites are recorded under.
	// Required.
	CurrentUser string
	// Store is the device key-value store favorites mirror to.
	// Defaults to an in-memory store.
	Store storage.Store
	// NarrationPeriod is the pause between narrated sentences.
	// Defaults to DefaultNarrationPeriod.
	NarrationPeriod time.Duration
	// FeedbackDelay is how long answer feedback shows before the
	// quiz advances. Defaults to DefaultFeedbackDelay.
	FeedbackDelay time.Duration
	// MessageTTL is how long inline messages stay visible.
	// Defaults to notify.DefaultTTL.
	MessageTTL time.Duration
	// OnChange, if set, is called when state changes outside an
	// action dispatch (narration steps, quiz advance, auto-clear).
	OnChange func()
}

func (c *Config) validate() error {
	if c.CurrentUser == "" {
		return fmt.Errorf("history: Config.CurrentUser is required")
	}
	if c.Store == nil {
		c.Store = storage.NewMemStore()
	}
	if c.NarrationPeriod <= 0 {
		c.NarrationPeriod = DefaultNarrationPeriod
	}
	if c.FeedbackDelay <= 0 {
		c.FeedbackDelay = DefaultFeedbackDelay
	}
	return nil
}

// App is the history-lesson browser.
type App struct {
	mu  sync.Mutex
	cfg Config

	model  Model
	cursor int // narrated sentence index, -1 when idle

	flags     *view.MemState // view-local: active era tab
	surfaces  *surface.Controller
	narration *timer.Driver
	feedback  timer.Delay
	notices   *notify.Center
}

// New constructs the app and loads persisted favorites.
func New(cfg Config) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	a := &App{
		cfg:    cfg,
		model:  SeedModel(),
		cursor: -1,
		flags:  view.NewMemState(),
	}
	a.model.Favorites = entity.NewIDSet(storage.IDList(cfg.Store, favoritesKey)...)
	a.notices = notify.New(cfg.MessageTTL)
	a.notices.OnChange = cfg.OnChange
	a.surfaces = surface.New(a.resetSurfaceState)
	a.narration = timer.NewDriver(cfg.NarrationPeriod)
	a.narration.OnStep = a.narrationStep
	a.narration.OnDone = a.narrationDone
	return a, nil
}

// resetSurfaceState runs on every surface teardown: quiz progress
// and the narration cursor never bleed into the next opened event.
func (a *App) resetSurfaceState() {
	a.model = a.model.ResetQuiz()
	a.cursor = -1
}

// Handle processes a semantic action. Recognized kinds:
//
//	open id=<event>     open an event's detail surface
//	close               close the open surface
//	tab era=<era>       set the era filter ("" shows all)
//	fav id=<event>      toggle a favorite
//	narrate             start sentence narration for the open event
//	stop                stop narration
//	answer choice=<n>   answer the current quiz question
//	retry               restart the quiz
func (a *App) Handle(act *proto.Action) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch act.Kind {
	case "open":
		if _, ok := a.model.Event(act.Get("id")); ok {
			a.surfaces.Open("event/" + act.Get("id"))
		}
	case "close":
		a.surfaces.Close()
	case "tab":
		a.flags.Set("tab", act.Get("era"))
	case "fav":
		if _, ok := a.model.Event(act.Get("id")); ok {
			a.model = a.model.ToggleFavorite(act.Get("id"))
			storage.SetIDList(a.cfg.Store, favoritesKey, a.model.Favorites.IDs())
		}
	case "narrate":
		a.startNarration()
	case "stop":
		a.narration.Stop()
		a.cursor = -1
	case "answer":
		choice, err := strconv.Atoi(act.Get("choice"))
		if err != nil {
			return
		}
		a.answer(choice)
	case "retry":
		if a.openEventID() != "" {
			a.model = a.model.ResetQuiz()
		}
	}
}

// openEventID returns the ID of the open event, or "".
func (a *App) openEventID() string {
	cur := a.surfaces.Current()
	if !strings.HasPrefix(cur, "event/") {
		return ""
	}
	return strings.TrimPrefix(cur, "event/")
}

// startNarration begins sentence-by-sentence narration of the open
// event's body, from sentence zero. Called with the lock held.
func (a *App) startNarration() {
	e, ok := a.model.Event(a.openEventID())
	if !ok {
		return
	}
	sentences := speech.Sentences(e.Body)
	if len(sentences) == 0 {
		a.notices.Flash("nothing to narrate")
		return
	}
	a.cursor = 0
	a.narration.Start(len(sentences))
	a.surfaces.Own(a.narration)
}

// narrationStep runs on the timer goroutine. The surface may have
// closed since the step was scheduled; without an open event the
// step is discarded.
func (a *App) narrationStep(pos int) {
	a.mu.Lock()
	if a.openEventID() == "" {
		a.mu.Unlock()
		return
	}
	a.cursor = pos
	change := a.cfg.OnChange
	a.mu.Unlock()
	if change != nil {
		change()
	}
}

func (a *App) narrationDone() {
	a.mu.Lock()
	a.cursor = -1
	change := a.cfg.OnChange
	a.mu.Unlock()
	if change != nil {
		change()
	}
}

// answer scores the choice against the current question and arms the
// feedback delay. Called with the lock held.
func (a *App) answer(choice int) {
	e, ok := a.model.Event(a.openEventID())
	if !ok || len(e.Questions) == 0 {
		return
	}
	q := a.model.Quiz
	if q.Locked || q.Completed {
		return
	}
	if choice < 0 || choice >= len(e.Questions[q.Index].Options) {
		return
	}
	correct := choice == e.Questions[q.Index].Answer
	a.model = a.model.AnswerQuiz(correct)
	a.feedback.After(a.cfg.FeedbackDelay, a.advanceQuiz)
	a.surfaces.Own(&a.feedback)
}

// advanceQuiz runs after the feedback delay, on the timer goroutine.
// If the surface closed first the delay was cancelled, but liveness
// is re-checked anyway so a torn-down quiz is never advanced.
func (a *App) advanceQuiz() {
	a.mu.Lock()
	e, ok := a.model.Event(a.openEventID())
	if !ok {
		a.mu.Unlock()
		return
	}
	a.model = a.model.AdvanceQuiz(len(e.Questions))
	change := a.cfg.OnChange
	a.mu.Unlock()
	if change != nil {
		change()
	}
}

// Model returns a snapshot of the entity state.
func (a *App) Model() Model {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model
}

// Cursor returns the narrated sentence index, -1 when idle.
func (a *App) Cursor() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cursor
}

// Notice returns the visible inline message, or "".
func (a *App) Notice() string { return a.notices.Message() }
