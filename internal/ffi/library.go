// Package ffi provides Go bindings to the Steamworks flat API via purego.
// The steam_api library is opened at runtime and every entry point is
// resolved by name, so nothing links against Steamworks at build time.
//
// This is the only package that turns raw addresses into callable Go
// funcs. Everything above it works with the typed tables built here.
package ffi

import (
	"errors"
	"fmt"
	"runtime"
)

// Module resolves exported symbols of a loaded native library.
type Module interface {
	// Bind looks up the exported symbol name and stores a callable for it
	// into fptr, which must be a pointer to a func variable whose signature
	// matches the native declaration exactly.
	Bind(fptr any, name string) error

	// Close releases the module. Nothing bound from it may be called
	// afterwards.
	Close() error
}

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrLibraryClosed       = errors.New("library closed")
	errNullSymbol          = errors.New("symbol resolved to a null address")
)

// OpenError reports that the native loader could not open a library.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// SymbolError reports that an exported symbol could not be resolved.
type SymbolError struct {
	Name string
	Err  error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("symbol %s: %v", e.Name, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// LibraryName returns the steam_api file name for goos.
func LibraryName(goos string) (string, error) {
	switch goos {
	case "windows":
		return "steam_api64.dll", nil
	case "linux":
		return "libsteam_api.so", nil
	case "darwin":
		return "libsteam_api.dylib", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// Library is a native library opened through the platform loader.
type Library struct {
	path   string
	handle uintptr
}

// Open loads the library at path. An empty path means the conventional
// name for the running platform, left to the system loader to locate.
func Open(path string) (*Library, error) {
	if path == "" {
		name, err := LibraryName(runtime.GOOS)
		if err != nil {
			return nil, err
		}
		path = name
	}

	handle, err := openLibrary(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if handle == 0 {
		return nil, &OpenError{Path: path, Err: errors.New("loader returned a null handle")}
	}

	return &Library{path: path, handle: handle}, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Bind implements Module.
func (l *Library) Bind(fptr any, name string) error {
	if l.handle == 0 {
		return &SymbolError{Name: name, Err: ErrLibraryClosed}
	}

	addr, err := getSymbol(l.handle, name)
	if err != nil {
		return &SymbolError{Name: name, Err: err}
	}
	if addr == 0 {
		return &SymbolError{Name: name, Err: errNullSymbol}
	}

	return bindFunc(fptr, addr)
}

// Close unloads the library. Calling it again is a no-op.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}

	handle := l.handle
	l.handle = 0
	if err := closeLibrary(handle); err != nil {
		return fmt.Errorf("close %s: %w", l.path, err)
	}
	return nil
}
