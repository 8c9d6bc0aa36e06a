package shop

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/elizafairlady/go-appdemos/entity"
	"github.com/elizafairlady/go-appdemos/notify"
	"github.com/elizafairlady/go-appdemos/proto"
	"github.com/elizafairlady/go-appdemos/storage"
	"github.com/elizafairlady/go-appdemos/surface"
	"github.com/elizafairlady/go-appdemos/view"
)

const wishlistKey = "shop/wishlist"

// Config configures a storefront App.
type Config struct {
	// CurrentUser is the identity wishlist entries and ratings are
	// recorded under. Required.
	CurrentUser string
	// Store is the device key-value store the wishlist mirrors to.
	// Defaults to an in-memory store.
	Store storage.Store
	// MessageTTL is how long inline messages stay visible.
	// Defaults to notify.DefaultTTL.
	MessageTTL time.Duration
	// OnChange, if set, is called when state changes outside an
	// action dispatch (message auto-clear).
	OnChange func()
}

func (c *Config) validate() error {
	if c.CurrentUser == "" {
		return fmt.Errorf("shop: Config.CurrentUser is required")
	}
	if c.Store == nil {
		c.Store = storage.NewMemStore()
	}
	return nil
}

// App is the storefront application.
type App struct {
	mu  sync.Mutex
	cfg Config

	model Model

	flags    *view.MemState // view-local: active category tab
	surfaces *surface.Controller
	notices  *notify.Center
}

// New constructs the app and loads the persisted wishlist.
func New(cfg Config) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, model: SeedModel(), flags: view.NewMemState()}
	a.model.Wishlist = entity.NewIDSet(storage.IDList(cfg.Store, wishlistKey)...)
	a.notices = notify.New(cfg.MessageTTL)
	a.notices.OnChange = cfg.OnChange
	a.surfaces = surface.New(nil)
	return a, nil
}

// Handle processes a semantic action. Recognized kinds:
//
//	open id=<sku>       open a product's detail surface
//	close               close the open surface
//	tab cat=<category>  set the category filter ("" shows all)
//	wish id=<sku>       toggle a wishlist entry
//	rate id=<sku> score=<1-5>
//	cart-add id=<sku>
//	cart-del id=<sku>
//	cart-clear
func (a *App) Handle(act *proto.Action) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch act.Kind {
	case "open":
		if _, ok := a.model.Product(act.Get("id")); ok {
			a.surfaces.Open("product/" + act.Get("id"))
		}
	case "close":
		a.surfaces.Close()
	case "tab":
		a.flags.Set("tab", act.Get("cat"))
	case "wish":
		a.model = a.model.ToggleWishlist(act.Get("id"))
		storage.SetIDList(a.cfg.Store, wishlistKey, a.model.Wishlist.IDs())
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
	case "cart-add":
		a.model = a.model.AddToCart(act.Get("id"))
	case "cart-del":
		a.model = a.model.RemoveFromCart(act.Get("id"))
	case "cart-clear":
		a.model = a.model.ClearCart()
	}
}

// Model returns a snapshot of the entity state.
func (a *App) Model() Model {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model
}

// Notice returns the visible inline message, or "".
func (a *App) Notice() string { return a.notices.Message() }
