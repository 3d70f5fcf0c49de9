// Package ffitest provides an in-process stand-in for the steam_api library.
// Exports are plain Go funcs bound through reflection, so tests can drop
// symbols, flip results and count calls without a native library.
package ffitest

import (
	"fmt"
	"reflect"

	"github.com/agiangrant/aperture/internal/ffi"
)

// Steam is a fake Steamworks runtime. Its fields may be changed between
// calls to steer what the exports return.
type Steam struct {
	InitResult bool
	Running    bool
	Token      ffi.AppsToken

	Subscribed     bool
	LowViolence    bool
	FamilySharing  bool
	FreeWeekend    bool
	VACBanned      bool
	DLCCount       uint32
	SubscribedApps map[uint32]bool
	InstalledDLC   map[uint32]bool

	InitCalls         int
	ShutdownCalls     int
	RunCallbacksCalls int
	AccessorCalls     int
	CloseCalls        int

	// Tokens and AppIDs record what the flat exports were called with.
	Tokens []ffi.AppsToken
	AppIDs []uint32

	exports map[string]any
	binds   []string
}

// NewSteam returns a runtime that exports every core symbol, every flat
// ISteamApps symbol and the given accessor versions.
func NewSteam(accessors ...string) *Steam {
	s := &Steam{
		InitResult:     true,
		Running:        true,
		Token:          0x5eed,
		SubscribedApps: map[uint32]bool{},
		InstalledDLC:   map[uint32]bool{},
	}

	s.exports = map[string]any{
		ffi.SymInit: func() bool {
			s.InitCalls++
			return s.InitResult
		},
		ffi.SymShutdown: func() {
			s.ShutdownCalls++
		},
		ffi.SymIsSteamRunning: func() bool {
			return s.Running
		},
		ffi.SymRunCallbacks: func() {
			s.RunCallbacksCalls++
		},
		ffi.SymAppsIsSubscribed: func(self ffi.AppsToken) bool {
			s.record(self)
			return s.Subscribed
		},
		ffi.SymAppsIsLowViolence: func(self ffi.AppsToken) bool {
			s.record(self)
			return s.LowViolence
		},
		ffi.SymAppsIsSubscribedApp: func(self ffi.AppsToken, appID uint32) bool {
			s.record(self, appID)
			return s.SubscribedApps[appID]
		},
		ffi.SymAppsIsSubscribedFromFamilySharing: func(self ffi.AppsToken) bool {
			s.record(self)
			return s.FamilySharing
		},
		ffi.SymAppsIsSubscribedFromFreeWeekend: func(self ffi.AppsToken) bool {
			s.record(self)
			return s.FreeWeekend
		},
		ffi.SymAppsIsVACBanned: func(self ffi.AppsToken) bool {
			s.record(self)
			return s.VACBanned
		},
		ffi.SymAppsGetDLCCount: func(self ffi.AppsToken) uint32 {
			s.record(self)
			return s.DLCCount
		},
		ffi.SymAppsIsDlcInstalled: func(self ffi.AppsToken, appID uint32) bool {
			s.record(self, appID)
			return s.InstalledDLC[appID]
		},
	}

	accessor := func() ffi.AppsToken {
		s.AccessorCalls++
		return s.Token
	}
	for _, name := range accessors {
		s.exports[name] = accessor
	}

	return s
}

func (s *Steam) record(self ffi.AppsToken, appIDs ...uint32) {
	s.Tokens = append(s.Tokens, self)
	s.AppIDs = append(s.AppIDs, appIDs...)
}

// Remove drops exports so that binding them fails.
func (s *Steam) Remove(names ...string) *Steam {
	for _, name := range names {
		delete(s.exports, name)
	}
	return s
}

// Binds returns every export name Bind was asked for, in order, including
// the ones that failed.
func (s *Steam) Binds() []string {
	return s.binds
}

// Bind implements ffi.Module.
func (s *Steam) Bind(fptr any, name string) error {
	s.binds = append(s.binds, name)

	fn, ok := s.exports[name]
	if !ok {
		return &ffi.SymbolError{Name: name, Err: fmt.Errorf("undefined symbol: %s", name)}
	}

	dst := reflect.ValueOf(fptr)
	if dst.Kind() != reflect.Pointer || dst.Elem().Kind() != reflect.Func {
		return fmt.Errorf("bind %s: want pointer to func, got %T", name, fptr)
	}
	src := reflect.ValueOf(fn)
	if !src.Type().AssignableTo(dst.Elem().Type()) {
		return fmt.Errorf("bind %s: export is %s, declared %s", name, src.Type(), dst.Elem().Type())
	}
	dst.Elem().Set(src)
	return nil
}

// Close implements ffi.Module.
func (s *Steam) Close() error {
	s.CloseCalls++
	return nil
}
