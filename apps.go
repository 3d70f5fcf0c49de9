package aperture

import "github.com/agiangrant/aperture/internal/ffi"

// Apps wraps ISteamApps. It is valid only while the Client that returned it
// stays initialized; afterwards every method returns ErrInterfaceUnavailable
// without calling into Steam.
type Apps struct {
	client *Client
	epoch  uint64
	inner  ffi.SteamApps
}

// call runs fn against the native interface if the owning client is still
// live. The client lock is held for the duration so Close cannot race it.
func call[T any](a *Apps, fn func(ffi.SteamApps) T) (T, error) {
	a.client.mu.Lock()
	defer a.client.mu.Unlock()

	if !a.client.live(a.epoch) {
		var zero T
		return zero, unavailable(InterfaceSteamApps)
	}
	return fn(a.inner), nil
}

func (a *Apps) IsSubscribed() (bool, error) {
	return call(a, ffi.SteamApps.IsSubscribed)
}

func (a *Apps) IsLowViolence() (bool, error) {
	return call(a, ffi.SteamApps.IsLowViolence)
}

// IsSubscribedApp reports whether the user owns appID.
func (a *Apps) IsSubscribedApp(appID uint32) (bool, error) {
	return call(a, func(s ffi.SteamApps) bool {
		return s.IsSubscribedApp(appID)
	})
}

func (a *Apps) IsSubscribedFromFamilySharing() (bool, error) {
	return call(a, ffi.SteamApps.IsSubscribedFromFamilySharing)
}

func (a *Apps) IsSubscribedFromFreeWeekend() (bool, error) {
	return call(a, ffi.SteamApps.IsSubscribedFromFreeWeekend)
}

func (a *Apps) IsVACBanned() (bool, error) {
	return call(a, ffi.SteamApps.IsVACBanned)
}

// DLCCount returns the number of DLC pieces for the running app.
func (a *Apps) DLCCount() (uint32, error) {
	return call(a, ffi.SteamApps.GetDLCCount)
}

// IsDLCInstalled reports whether the DLC appID is installed.
func (a *Apps) IsDLCInstalled(appID uint32) (bool, error) {
	return call(a, func(s ffi.SteamApps) bool {
		return s.IsDlcInstalled(appID)
	})
}
