//go:build !darwin && !linux && !windows

package ffi

import "fmt"

func openLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("%w: cannot load %s", ErrUnsupportedPlatform, path)
}

func getSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func closeLibrary(handle uintptr) error {
	return nil
}

func bindFunc(fptr any, addr uintptr) error {
	return ErrUnsupportedPlatform
}
