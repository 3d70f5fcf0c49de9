package aperture

import (
	"runtime"

	"github.com/agiangrant/aperture/internal/ffi"
)

// Platform represents the operating system steam_api is loaded on
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// Platforms lists every platform Steamworks ships a runtime for.
var Platforms = []Platform{PlatformWindows, PlatformLinux, PlatformMacOS}

// CurrentPlatform returns the platform the process is running on
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// Supported returns true if Steamworks ships a runtime for p
func (p Platform) Supported() bool {
	_, err := ffi.LibraryName(string(p))
	return err == nil
}

// LibraryName returns the steam_api file name for p.
func LibraryName(p Platform) (string, error) {
	name, err := ffi.LibraryName(string(p))
	if err != nil {
		return "", &Error{Kind: KindLoad, Cause: err}
	}
	return name, nil
}
