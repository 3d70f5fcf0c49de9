package ffi

import (
	"errors"
	"fmt"
)

// Core SteamAPI exports
const (
	SymInit           = "SteamAPI_Init"
	SymShutdown       = "SteamAPI_Shutdown"
	SymIsSteamRunning = "SteamAPI_IsSteamRunning"
	SymRunCallbacks   = "SteamAPI_RunCallbacks"
)

// ErrInitFailed is returned when SteamAPI_Init reports false.
var ErrInitFailed = errors.New("SteamAPI_Init failed")

// Core holds the lifecycle entry points every steam_api build exports.
type Core struct {
	Init           func() bool
	Shutdown       func()
	IsSteamRunning func() bool
	RunCallbacks   func()
}

func (c *Core) symbols() []Symbol {
	return []Symbol{
		{"init", SymInit, &c.Init},
		{"shutdown", SymShutdown, &c.Shutdown},
		{"is-running", SymIsSteamRunning, &c.IsSteamRunning},
		{"run-callbacks", SymRunCallbacks, &c.RunCallbacks},
	}
}

// API is the loaded Steamworks runtime. It owns the module and every table
// resolved from it. API is not safe for concurrent use.
type API struct {
	lib  Module
	path string
	core Core

	steamApps  func() AppsToken
	appsChoice Choice
	apps       AppsFns

	initialized bool
}

// LoadOptions selects the accessor candidates used by Load.
type LoadOptions struct {
	AppsCandidates Candidates
}

// Load resolves the core exports, the versioned SteamApps accessor and the
// flat SteamApps table from m. On failure nothing is returned and m is left
// open for the caller to close.
func Load(m Module, opts LoadOptions) (*API, error) {
	candidates := opts.AppsCandidates
	if candidates == nil {
		candidates = DefaultAppsCandidates
	}

	var (
		core      Core
		apps      AppsFns
		steamApps func() AppsToken
	)

	if err := LoadSymbols(m, core.symbols()); err != nil {
		return nil, err
	}

	choice, err := candidates.Resolve(m, &steamApps)
	if err != nil {
		return nil, err
	}

	if err := LoadSymbols(m, apps.symbols()); err != nil {
		return nil, err
	}

	return &API{
		lib:        m,
		core:       core,
		steamApps:  steamApps,
		appsChoice: choice,
		apps:       apps,
	}, nil
}

// OpenAPI opens the library at path and loads it. The library is closed
// again if any symbol fails to resolve.
func OpenAPI(path string, opts LoadOptions) (*API, error) {
	lib, err := Open(path)
	if err != nil {
		return nil, err
	}

	api, err := Load(lib, opts)
	if err != nil {
		if cerr := lib.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		return nil, fmt.Errorf("load %s: %w", lib.Path(), err)
	}
	api.path = lib.Path()

	return api, nil
}

// Path returns the library path, or "" when the module was not opened from
// a file.
func (a *API) Path() string {
	return a.path
}

// AppsChoice reports which SteamApps accessor export was bound.
func (a *API) AppsChoice() Choice {
	return a.appsChoice
}

// Initialized reports whether SteamAPI_Init has succeeded and shutdown has
// not run since.
func (a *API) Initialized() bool {
	return a.initialized
}

// Init calls SteamAPI_Init. It is a no-op once initialized.
func (a *API) Init() error {
	if a.lib == nil {
		return ErrLibraryClosed
	}
	if a.initialized {
		return nil
	}
	if !a.core.Init() {
		return ErrInitFailed
	}
	a.initialized = true
	return nil
}

// Shutdown calls SteamAPI_Shutdown if the runtime is initialized and
// reports whether it did.
func (a *API) Shutdown() bool {
	if !a.initialized {
		return false
	}
	a.core.Shutdown()
	a.initialized = false
	return true
}

// RunCallbacks pumps the Steam callback queue. It does nothing before Init.
func (a *API) RunCallbacks() {
	if !a.initialized {
		return
	}
	a.core.RunCallbacks()
}

// IsSteamRunning reports whether the Steam client is running. It is false
// before Init.
func (a *API) IsSteamRunning() bool {
	if !a.initialized {
		return false
	}
	return a.core.IsSteamRunning()
}

// SteamApps fetches the ISteamApps interface. It reports false before Init
// or when Steam hands back a null interface.
func (a *API) SteamApps() (SteamApps, bool) {
	if !a.initialized {
		return SteamApps{}, false
	}
	return NewSteamApps(a.steamApps(), &a.apps)
}

// Close shuts the runtime down if needed and then releases the module.
// Calling it again is a no-op.
func (a *API) Close() error {
	a.Shutdown()
	if a.lib == nil {
		return nil
	}
	lib := a.lib
	a.lib = nil
	return lib.Close()
}
