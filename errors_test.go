package aperture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/aperture/internal/ffi"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "load",
			err:  &Error{Kind: KindLoad, Cause: errors.New("libsteam_api.so: cannot open shared object file")},
			want: "failed to load steamworks runtime: libsteam_api.so: cannot open shared object file",
		},
		{
			name: "version resolution",
			err:  &Error{Kind: KindVersionResolution, Name: InterfaceSteamApps, Cause: errors.New("undefined symbol")},
			want: "failed to resolve steamworks interface ISteamApps: undefined symbol",
		},
		{
			name: "init failed",
			err:  &Error{Kind: KindInitFailed, Cause: ffi.ErrInitFailed},
			want: "SteamAPI_Init failed",
		},
		{
			name: "interface unavailable",
			err:  unavailable(InterfaceSteamApps),
			want: "Steam interface unavailable: ISteamApps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := unavailable(InterfaceSteamApps)

	assert.ErrorIs(t, err, ErrInterfaceUnavailable)
	assert.ErrorIs(t, err, unavailable(InterfaceSteamApps))
	assert.NotErrorIs(t, err, unavailable("ISteamUser"))
	assert.NotErrorIs(t, err, ErrLoad)
}

func TestLoadErrorClassification(t *testing.T) {
	missing := &ffi.SymbolError{Name: ffi.SymInit, Err: errors.New("undefined symbol")}
	assert.Equal(t, KindLoad, loadError(missing).Kind)

	version := &ffi.VersionError{Candidates: ffi.DefaultAppsCandidates, Err: missing}
	assert.Equal(t, KindVersionResolution, loadError(version).Kind)

	assert.Equal(t, KindVersionResolution, loadError(ffi.ErrNoCandidates).Kind)

	open := &ffi.OpenError{Path: "libsteam_api.so", Err: errors.New("not found")}
	lerr := loadError(open)
	assert.Equal(t, KindLoad, lerr.Kind)
	assert.Contains(t, lerr.Error(), "not found", "loader text is surfaced")
}
