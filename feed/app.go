package feed

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/elizafairlady/go-appdemos/entity"
	"github.com/elizafairlady/go-appdemos/notify"
	"github.com/elizafairlady/go-appdemos/proto"
	"github.com/elizafairlady/go-appdemos/storage"
	"github.com/elizafairlady/go-appdemos/surface"
	"github.com/elizafairlady/go-appdemos/timer"
)

// composerID is the surface ID of the upload composer. Post detail
// surfaces use "post/<id>"; one controller covers both, so opening a
// post closes the composer and vice versa.
const composerID = "composer"

const likedKey = "feed/liked"

// DefaultUploadDelay is the simulated upload latency.
const DefaultUploadDelay = 1200 * time.Millisecond

// DefaultEmoji is the reaction palette offered on every post.
var DefaultEmoji = []string{"❤️", "👍", "🔥"}

// Config configures a feed App.
type Config struct {
	// CurrentUser is the identity reactions, likes, and uploads are
	// recorded under. Required.
	CurrentUser string
	// Store is the device key-value store the liked set mirrors to.
	// Defaults to an in-memory store.
	Store storage.Store
	// UploadDelay is the simulated upload latency.
	// Defaults to DefaultUploadDelay.
	UploadDelay time.Duration
	// MessageTTL is how long inline errors stay visible.
	// Defaults to notify.DefaultTTL.
	MessageTTL time.Duration
	// OnChange, if set, is called when state changes outside an
	// action dispatch (upload completion, message auto-clear).
	OnChange func()
}

func (c *Config) validate() error {
	if c.CurrentUser == "" {
		return fmt.Errorf("feed: Config.CurrentUser is required")
	}
	if c.Store == nil {
		c.Store = storage.NewMemStore()
	}
	if c.UploadDelay <= 0 {
		c.UploadDelay = DefaultUploadDelay
	}
	return nil
}

// App is the photo feed application.
type App struct {
	mu  sync.Mutex
	cfg Config

	model     Model
	draft     Draft
	uploading bool

	surfaces *surface.Controller
	upload   timer.Delay
	notices  *notify.Center
}

// New constructs the app, validating the config and loading the
// persisted liked set.
func New(cfg Config) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, model: SeedModel()}
	a.model.Liked = entity.NewIDSet(storage.IDList(cfg.Store, likedKey)...)
	a.notices = notify.New(cfg.MessageTTL)
	a.notices.OnChange = cfg.OnChange
	a.surfaces = surface.New(a.resetSurfaceState)
	return a, nil
}

// resetSurfaceState is the single teardown hook: whichever way a
// surface closes, the composer draft and spinner are gone.
func (a *App) resetSurfaceState() {
	a.draft = Draft{}
	a.uploading = false
}

// Handle processes a semantic action. Recognized kinds:
//
//	open id=<post>      open a post's detail surface
//	close               close the open surface
//	compose             open the upload composer
//	caption text=<s>    set the draft caption
//	submit              validate the draft and start the upload
//	react id=<post> emoji=<e>
//	like id=<post>
//	comment id=<post> text=<s>
func (a *App) Handle(act *proto.Action) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch act.Kind {
	case "open":
		if _, ok := a.model.Post(act.Get("id")); ok {
			a.surfaces.Open("post/" + act.Get("id"))
		}
	case "close":
		a.surfaces.Close()
	case "compose":
		a.surfaces.Open(composerID)
	case "caption":
		if a.surfaces.IsOpen(composerID) {
			a.draft.Caption = act.Get("text")
		}
	case "submit":
		a.submit()
	case "react":
		a.model = a.model.ToggleReaction(act.Get("id"), act.Get("emoji"), a.cfg.CurrentUser)
	case "like":
		a.model = a.model.ToggleLike(act.Get("id"))
		storage.SetIDList(a.cfg.Store, likedKey, a.model.Liked.IDs())
	case "comment":
		text := strings.TrimSpace(act.Get("text"))
		if text == "" {
			a.notices.Flash(ErrCommentRequired.Error())
			return
		}
		a.model = a.model.AddComment(act.Get("id"), a.cfg.CurrentUser, text, time.Now())
	}
}

// AttachImage validates and attaches a selected file to the draft.
// Non-image content is rejected: the preview stays empty and an
// inline error is flashed.
func (a *App) AttachImage(name string, data []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.surfaces.IsOpen(composerID) {
		return
	}
	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		a.notices.Flash(ErrNotAnImage.Error())
		return
	}
	a.draft.ImageName = name
	a.draft.ImageData = data
}

// submit validates the draft and kicks off the simulated upload.
// Called with the lock held.
func (a *App) submit() {
	if !a.surfaces.IsOpen(composerID) || a.uploading {
		return
	}
	if err := ValidateDraft(a.draft); err != nil {
		a.notices.Flash(err.Error())
		return
	}
	a.uploading = true
	a.upload.After(a.cfg.UploadDelay, a.finishUpload)
	a.surfaces.Own(&a.upload)
}

// finishUpload lands the draft as a new post. It runs on the timer
// goroutine; the composer may have been torn down in the meantime,
// so liveness is re-checked under the lock.
func (a *App) finishUpload() {
	a.mu.Lock()
	if !a.surfaces.IsOpen(composerID) || !a.uploading {
		a.mu.Unlock()
		return
	}
	a.model = a.model.AddPost(a.draft, a.cfg.CurrentUser, time.Now())
	a.surfaces.Close() // runs the same teardown as any other close
	change := a.cfg.OnChange
	a.mu.Unlock()
	if change != nil {
		change()
	}
}

// Uploading reports whether the composer spinner is showing.
func (a *App) Uploading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.uploading
}

// Notice returns the visible inline message, or "".
func (a *App) Notice() string { return a.notices.Message() }

// Model returns a snapshot of the entity state.
func (a *App) Model() Model {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model
}

// Open returns the open surface ID, or "".
func (a *App) Open() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.surfaces.Current()
}
