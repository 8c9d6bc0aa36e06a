package lyric

import (
	"errors"
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

// Persisted preference keys.
const (
	darkKey      = "lyric/dark"
	fontScaleKey = "lyric/fontScale"
	favoritesKey = "lyric/favorites"
	downloadsKey = "lyric/downloads"
)

// DefaultPlaybackPeriod is the pause between highlighted lines.
const DefaultPlaybackPeriod = 1500 * time.Millisecond

// DefaultFontScale is the font scale used when none is stored.
const DefaultFontScale = 1.0

// Config configures a lyric App.
type Config struct {
	// CurrentUser is the identity likes, favorites, and ratings are
	// recorded under. Required.
	CurrentUser string
	// Store is the device key-value store preferences mirror to.
	// Defaults to an in-memory store.
	Store storage.Store
	// Synth is the platform voice. Defaults to speech.Null (no
	// voice), which degrades narration to a visible notification.
	Synth speech.Synthesizer
	// PlaybackPeriod is the pause between highlighted lines.
	// Defaults to DefaultPlaybackPeriod.
	PlaybackPeriod time.Duration
	// MessageTTL is how long inline messages stay visible.
	// Defaults to notify.DefaultTTL.
	MessageTTL time.Duration
	// OnChange, if set, is called when state changes outside an
	// action dispatch.
	OnChange func()
}

func (c *Config) validate() error {
	if c.CurrentUser == "" {
		return fmt.Errorf("lyric: Config.CurrentUser is required")
	}
	if c.Store == nil {
		c.Store = storage.NewMemStore()
	}
	if c.Synth == nil {
		c.Synth = speech.Null{}
	}
	if c.PlaybackPeriod <= 0 {
		c.PlaybackPeriod = DefaultPlaybackPeriod
	}
	return nil
}

// App is the lyric/podcast-sharing application.
type App struct {
	mu  sync.Mutex
	cfg Config

	model     Model
	cursor    int // highlighted line, -1 when idle
	speaking  bool
	dark      bool
	fontScale float64

	flags    *view.MemState // view-local: search query
	surfaces *surface.Controller
	playback *timer.Driver
	notices  *notify.Center
}

// New constructs the app and loads persisted preferences: dark-mode
// flag, font scale, favorites, and downloads. Malformed stored
// values fall back to defaults.
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
	a.dark = storage.Bool(cfg.Store, darkKey, false)
	a.fontScale = storage.Float(cfg.Store, fontScaleKey, DefaultFontScale)
	a.model.Favorites = entity.NewIDSet(storage.IDList(cfg.Store, favoritesKey)...)
	a.model.Downloads = entity.NewIDSet(storage.IDList(cfg.Store, downloadsKey)...)
	a.notices = notify.New(cfg.MessageTTL)
	a.notices.OnChange = cfg.OnChange
	a.surfaces = surface.New(a.resetSurfaceState)
	a.playback = timer.NewDriver(cfg.PlaybackPeriod)
	a.playback.OnStep = a.playbackStep
	a.playback.OnDone = a.playbackDone
	return a, nil
}

// resetSurfaceState runs on every surface teardown: the playback
// cursor and speaking flag never bleed into the next opened song.
func (a *App) resetSurfaceState() {
	a.cursor = -1
	a.speaking = false
}

// Handle processes a semantic action. Recognized kinds:
//
//	open id=<song>          open a song's detail surface
//	close                   close the open surface
//	search q=<text>         filter the library
//	fav id=<song>           toggle a favorite
//	download id=<song>      toggle a download
//	like id=<song>          toggle a like
//	rate id=<song> score=<1-5>
//	play                    start the line-highlight cursor
//	stop                    stop playback and narration
//	speak                   narrate the open song aloud
//	dark on=<true|false>    set the theme flag
//	font scale=<float>      set the font scale
func (a *App) Handle(act *proto.Action) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch act.Kind {
	case "open":
		if _, ok := a.model.Song(act.Get("id")); ok {
			a.surfaces.Open("song/" + act.Get("id"))
		}
	case "close":
		a.surfaces.Close()
	case "search":
		a.flags.Set("search", act.Get("q"))
	case "fav":
		a.model = a.model.ToggleFavorite(act.Get("id"))
		storage.SetIDList(a.cfg.Store, favoritesKey, a.model.Favorites.IDs())
	case "download":
		a.model = a.model.ToggleDownload(act.Get("id"))
		storage.SetIDList(a.cfg.Store, downloadsKey, a.model.Downloads.IDs())
	case "like":
		a.model = a.model.ToggleLike(act.Get("id"))
	case "rate":
		score, err := strconv.Atoi(act.Get("score"))
		if err != nil {
			a.notices.Flash("rating must be a number from 1 to 5")
			return
		}
		next, err := a.model.Rate(act.Get("id"), a.cfg.CurrentUser, score)
		if err != nil {
			a.notices.Flash(err.Error())
			return
		}
		a.model = next
	case "play":
		a.startPlayback()
	case "stop":
		a.stopPlayback()
	case "speak":
		a.speak()
	case "dark":
		a.dark = act.Get("on") == "true"
		storage.SetBool(a.cfg.Store, darkKey, a.dark)
	case "font":
		scale, err := strconv.ParseFloat(act.Get("scale"), 64)
		if err != nil || scale <= 0 {
			a.notices.Flash("font scale must be a positive number")
			return
		}
		a.fontScale = scale
		storage.SetFloat(a.cfg.Store, fontScaleKey, scale)
	}
}

// openSongID returns the ID of the open song, or "".
func (a *App) openSongID() string {
	cur := a.surfaces.Current()
	if !strings.HasPrefix(cur, "song/") {
		return ""
	}
	return strings.TrimPrefix(cur, "song/")
}

// startPlayback begins the line-highlight cursor at line zero. Only
// one cursor owner runs per surface, so any in-progress narration is
// cancelled first. Called with the lock held.
func (a *App) startPlayback() {
	s, ok := a.model.Song(a.openSongID())
	if !ok || len(s.Lines) == 0 {
		return
	}
	a.cfg.Synth.Cancel()
	a.speaking = false
	a.cursor = 0
	a.playback.Start(len(s.Lines))
	a.surfaces.Own(a.playback)
}

func (a *App) stopPlayback() {
	a.playback.Stop()
	a.cfg.Synth.Cancel()
	a.cursor = -1
	a.speaking = false
}

// playbackStep runs on the timer goroutine; discarded if the surface
// closed since it was scheduled.
func (a *App) playbackStep(pos int) {
	a.mu.Lock()
	if a.openSongID() == "" {
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

func (a *App) playbackDone() {
	a.mu.Lock()
	a.cursor = -1
	change := a.cfg.OnChange
	a.mu.Unlock()
	if change != nil {
		change()
	}
}

// speak narrates the open song through the platform voice, driving
// the same line cursor from its boundary reports. When no voice is
// available the action is a no-op apart from the notification.
// Called with the lock held.
func (a *App) speak() {
	id := a.openSongID()
	s, ok := a.model.Song(id)
	if !ok || len(s.Lines) == 0 {
		return
	}
	// the voice takes over the cursor; a running playback driver
	// would race it line for line
	a.playback.Stop()
	text := strings.Join(s.Lines, " ")
	err := a.cfg.Synth.Speak(text, func(line int) {
		a.mu.Lock()
		if a.openSongID() != id {
			a.mu.Unlock()
			return
		}
		a.cursor = line
		change := a.cfg.OnChange
		a.mu.Unlock()
		if change != nil {
			change()
		}
	}, func() {
		a.mu.Lock()
		a.cursor = -1
		a.speaking = false
		change := a.cfg.OnChange
		a.mu.Unlock()
		if change != nil {
			change()
		}
	})
	if errors.Is(err, speech.ErrUnavailable) {
		a.notices.Flash("speech is not available on this device")
		return
	}
	if err != nil {
		a.notices.Flash("narration failed to start")
		return
	}
	a.speaking = true
	a.cursor = 0
	a.surfaces.Own(surface.StopFunc(a.cfg.Synth.Cancel))
}

// Model returns a snapshot of the entity state.
func (a *App) Model() Model {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model
}

// Cursor returns the highlighted line index, -1 when idle.
func (a *App) Cursor() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cursor
}

// Dark reports the persisted dark-mode flag.
func (a *App) Dark() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dark
}

// FontScale reports the persisted font scale.
func (a *App) FontScale() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fontScale
}

// Notice returns the visible inline message, or "".
func (a *App) Notice() string { return a.notices.Message() }
