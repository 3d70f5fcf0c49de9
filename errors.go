package aperture

import (
	"errors"
	"strings"

	"github.com/agiangrant/aperture/internal/ffi"
)

// Kind categorizes an Error.
type Kind string

const (
	KindLoad                 Kind = "load"                  // library or required symbol missing
	KindVersionResolution    Kind = "version_resolution"    // no accessor candidate resolved
	KindInitFailed           Kind = "init_failed"           // SteamAPI_Init returned false
	KindInterfaceUnavailable Kind = "interface_unavailable" // null interface or released client
)

// Error is returned by every fallible operation in this package.
type Error struct {
	Cause error
	Kind  Kind
	// Name is the Steam interface involved, if any.
	Name string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	switch e.Kind {
	case KindLoad:
		b.WriteString("failed to load steamworks runtime")
	case KindVersionResolution:
		b.WriteString("failed to resolve steamworks interface")
		if e.Name != "" {
			b.WriteByte(' ')
			b.WriteString(e.Name)
		}
	case KindInitFailed:
		b.WriteString("SteamAPI_Init failed")
	case KindInterfaceUnavailable:
		b.WriteString("Steam interface unavailable: ")
		b.WriteString(e.Name)
	default:
		b.WriteString(string(e.Kind))
	}

	if e.Cause != nil && e.Kind != KindInitFailed {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap returns the underlying loader or ffi error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same Kind. A target without a Name
// matches any interface.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Name == "" || t.Name == e.Name)
}

// Sentinels for errors.Is.
var (
	ErrLoad                 = &Error{Kind: KindLoad}
	ErrVersionResolution    = &Error{Kind: KindVersionResolution}
	ErrInitFailed           = &Error{Kind: KindInitFailed}
	ErrInterfaceUnavailable = &Error{Kind: KindInterfaceUnavailable}
)

// Steam interface names used in errors.
const (
	InterfaceSteamApps = "ISteamApps"
)

func unavailable(name string) *Error {
	return &Error{Kind: KindInterfaceUnavailable, Name: name}
}

// loadError classifies a failure from ffi loading.
func loadError(err error) *Error {
	var verr *ffi.VersionError
	if errors.As(err, &verr) || errors.Is(err, ffi.ErrNoCandidates) {
		return &Error{Kind: KindVersionResolution, Name: InterfaceSteamApps, Cause: err}
	}
	return &Error{Kind: KindLoad, Cause: err}
}
