package ffi

// AppsToken is an ISteamApps* handed out by Steam. It is never dereferenced
// here, only passed back into the flat exports. Zero means unavailable.
type AppsToken uintptr

// IsNull reports whether the token is the null interface.
func (t AppsToken) IsNull() bool {
	return t == 0
}

// Flat ISteamApps exports from steam_api_flat.h
const (
	SymAppsIsSubscribed                  = "SteamAPI_ISteamApps_BIsSubscribed"
	SymAppsIsLowViolence                 = "SteamAPI_ISteamApps_BIsLowViolence"
	SymAppsIsSubscribedApp               = "SteamAPI_ISteamApps_BIsSubscribedApp"
	SymAppsIsSubscribedFromFamilySharing = "SteamAPI_ISteamApps_BIsSubscribedFromFamilySharing"
	SymAppsIsSubscribedFromFreeWeekend   = "SteamAPI_ISteamApps_BIsSubscribedFromFreeWeekend"
	SymAppsIsVACBanned                   = "SteamAPI_ISteamApps_BIsVACBanned"
	SymAppsGetDLCCount                   = "SteamAPI_ISteamApps_GetDLCCount"
	SymAppsIsDlcInstalled                = "SteamAPI_ISteamApps_BIsDlcInstalled"
)

// DefaultAppsCandidates are the SteamApps accessor exports, newest first.
var DefaultAppsCandidates = Candidates{
	"SteamAPI_SteamApps_v010",
	"SteamAPI_SteamApps_v009",
	"SteamAPI_SteamApps_v008",
}

// AppsFns is the flat call table for ISteamApps. It is filled once at load
// time and only read afterwards.
type AppsFns struct {
	IsSubscribed                  func(self AppsToken) bool
	IsLowViolence                 func(self AppsToken) bool
	IsSubscribedApp               func(self AppsToken, appID uint32) bool
	IsSubscribedFromFamilySharing func(self AppsToken) bool
	IsSubscribedFromFreeWeekend   func(self AppsToken) bool
	IsVACBanned                   func(self AppsToken) bool
	GetDLCCount                   func(self AppsToken) uint32
	IsDlcInstalled                func(self AppsToken, appID uint32) bool
}

func (f *AppsFns) symbols() []Symbol {
	return []Symbol{
		{"is-subscribed", SymAppsIsSubscribed, &f.IsSubscribed},
		{"is-low-violence", SymAppsIsLowViolence, &f.IsLowViolence},
		{"is-subscribed-app", SymAppsIsSubscribedApp, &f.IsSubscribedApp},
		{"is-subscribed-from-family-sharing", SymAppsIsSubscribedFromFamilySharing, &f.IsSubscribedFromFamilySharing},
		{"is-subscribed-from-free-weekend", SymAppsIsSubscribedFromFreeWeekend, &f.IsSubscribedFromFreeWeekend},
		{"is-vac-banned", SymAppsIsVACBanned, &f.IsVACBanned},
		{"get-dlc-count", SymAppsGetDLCCount, &f.GetDLCCount},
		{"is-dlc-installed", SymAppsIsDlcInstalled, &f.IsDlcInstalled},
	}
}

// SteamApps pairs an ISteamApps token with the table that operates on it.
// Each method is exactly one native call.
type SteamApps struct {
	self AppsToken
	fns  *AppsFns
}

// NewSteamApps wraps tok. It reports false for a null token.
func NewSteamApps(tok AppsToken, fns *AppsFns) (SteamApps, bool) {
	if tok.IsNull() || fns == nil {
		return SteamApps{}, false
	}
	return SteamApps{self: tok, fns: fns}, true
}

// Token returns the wrapped interface token.
func (s SteamApps) Token() AppsToken {
	return s.self
}

func (s SteamApps) IsSubscribed() bool {
	return s.fns.IsSubscribed(s.self)
}

func (s SteamApps) IsLowViolence() bool {
	return s.fns.IsLowViolence(s.self)
}

func (s SteamApps) IsSubscribedApp(appID uint32) bool {
	return s.fns.IsSubscribedApp(s.self, appID)
}

func (s SteamApps) IsSubscribedFromFamilySharing() bool {
	return s.fns.IsSubscribedFromFamilySharing(s.self)
}

func (s SteamApps) IsSubscribedFromFreeWeekend() bool {
	return s.fns.IsSubscribedFromFreeWeekend(s.self)
}

func (s SteamApps) IsVACBanned() bool {
	return s.fns.IsVACBanned(s.self)
}

func (s SteamApps) GetDLCCount() uint32 {
	return s.fns.GetDLCCount(s.self)
}

func (s SteamApps) IsDlcInstalled(appID uint32) bool {
	return s.fns.IsDlcInstalled(s.self, appID)
}
