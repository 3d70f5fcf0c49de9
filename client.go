// Package aperture is a Go binding for the Steamworks SDK that loads
// steam_api at runtime instead of linking against it.
//
// Typical use:
//
//	client, err := aperture.Init()
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	apps, err := client.Apps()
//	if err != nil {
//		return err
//	}
//	owned, err := apps.IsSubscribedApp(440)
//
// Steam callbacks are not scheduled internally. Call RunCallbacks from the
// application's own loop, typically once per frame.
package aperture

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agiangrant/aperture/internal/ffi"
)

// Client owns the dynamically loaded Steam API and shuts it down on Close.
//
// Interface wrappers obtained from a Client stop working once it is closed.
// Methods are safe for concurrent use.
type Client struct {
	mu  sync.Mutex
	api *ffi.API

	// epoch advances on every shutdown so wrappers from an earlier
	// initialization can tell they are stale.
	epoch      uint64
	initFailed bool

	session uuid.UUID
	log     *zap.Logger
}

// Diagnostics describes how the runtime was loaded.
type Diagnostics struct {
	Session     string
	Platform    Platform
	LibraryPath string
	AppsSymbol  string
	AppsMisses  []string
	Initialized bool
}

// Load opens steam_api and resolves every entry point without initializing
// Steam. Most callers want Init instead.
func Load(opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	session := uuid.New()
	log := o.logger
	if log == nil {
		log = Logger()
	}
	log = log.With(zap.String("session", session.String()))

	loadOpts := ffi.LoadOptions{}
	if o.appsCandidates != nil {
		loadOpts.AppsCandidates = ffi.Candidates(o.appsCandidates)
	}

	var (
		api *ffi.API
		err error
	)
	if o.module != nil {
		api, err = ffi.Load(o.module, loadOpts)
		if err != nil {
			err = errors.Join(err, o.module.Close())
		}
	} else {
		log.Debug("loading steam_api", zap.String("path", o.libraryPath), zap.String("platform", string(CurrentPlatform())))
		api, err = ffi.OpenAPI(o.libraryPath, loadOpts)
	}
	if err != nil {
		lerr := loadError(err)
		log.Debug("steam_api load failed", zap.String("kind", string(lerr.Kind)), zap.Error(err))
		return nil, lerr
	}

	choice := api.AppsChoice()
	log.Debug("resolved versioned interface",
		zap.String("interface", InterfaceSteamApps),
		zap.String("symbol", choice.Symbol),
		zap.Strings("misses", choice.Misses),
	)

	return &Client{
		api:     api,
		session: session,
		log:     log,
	}, nil
}

// Init loads the runtime library and initializes SteamAPI.
func Init(opts ...Option) (*Client, error) {
	c, err := Load(opts...)
	if err != nil {
		return nil, err
	}

	if err := c.Init(); err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}

// Init calls SteamAPI_Init. A failed init is final for this client: later
// calls fail without reaching Steam again.
func (c *Client) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api == nil {
		return unavailable("SteamAPI")
	}
	if c.initFailed {
		return ErrInitFailed
	}

	if err := c.api.Init(); err != nil {
		if errors.Is(err, ffi.ErrInitFailed) {
			c.initFailed = true
			c.log.Warn("SteamAPI_Init failed")
			return &Error{Kind: KindInitFailed, Cause: err}
		}
		return &Error{Kind: KindLoad, Cause: err}
	}

	c.log.Info("steam api initialized", zap.String("library", c.api.Path()))
	return nil
}

// Session returns the id attached to this client's log entries.
func (c *Client) Session() uuid.UUID {
	return c.session
}

// Apps returns the ISteamApps wrapper.
func (c *Client) Apps() (*Apps, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api == nil || !c.api.Initialized() {
		return nil, unavailable(InterfaceSteamApps)
	}

	inner, ok := c.api.SteamApps()
	if !ok {
		return nil, unavailable(InterfaceSteamApps)
	}

	return &Apps{client: c, epoch: c.epoch, inner: inner}, nil
}

// RunCallbacks pumps Steam's callback queue. It does nothing unless the
// client is initialized.
func (c *Client) RunCallbacks() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api != nil {
		c.api.RunCallbacks()
	}
}

// IsSteamRunning reports whether the Steam client is running.
func (c *Client) IsSteamRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api == nil {
		return false
	}
	return c.api.IsSteamRunning()
}

// Initialized reports whether SteamAPI_Init succeeded and the client has
// not been closed.
func (c *Client) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.api != nil && c.api.Initialized()
}

// Diagnostics reports the loaded library and the chosen accessor export.
func (c *Client) Diagnostics() Diagnostics {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := Diagnostics{
		Session:  c.session.String(),
		Platform: CurrentPlatform(),
	}
	if c.api != nil {
		choice := c.api.AppsChoice()
		d.LibraryPath = c.api.Path()
		d.AppsSymbol = choice.Symbol
		d.AppsMisses = append([]string(nil), choice.Misses...)
		d.Initialized = c.api.Initialized()
	}
	return d
}

// Close shuts Steam down if it was initialized and unloads the library.
// Calling Close more than once is safe.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api == nil {
		return nil
	}

	api := c.api
	c.api = nil
	if api.Shutdown() {
		c.epoch++
		c.log.Info("steam api shut down")
	}
	return api.Close()
}

// live reports whether a wrapper created in epoch may still call Steam.
// The caller holds c.mu.
func (c *Client) live(epoch uint64) bool {
	return c.api != nil && c.api.Initialized() && c.epoch == epoch
}
