package aperture

import (
	"go.uber.org/zap"

	"github.com/agiangrant/aperture/internal/ffi"
)

// Option configures a Client.
type Option func(*options)

type options struct {
	libraryPath    string
	appsCandidates []string
	logger         *zap.Logger

	// module replaces the native library, for tests.
	module ffi.Module
}

// WithLibraryPath loads steam_api from path instead of the platform's
// default library name.
func WithLibraryPath(path string) Option {
	return func(o *options) {
		o.libraryPath = path
	}
}

// WithAppsCandidates overrides the SteamApps accessor exports tried at load
// time. They are tried in the order given.
func WithAppsCandidates(names ...string) Option {
	return func(o *options) {
		o.appsCandidates = append([]string{}, names...)
	}
}

// WithLogger sets the logger for this client.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithConfig applies the library and apps sections of cfg.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.libraryPath = cfg.Library.Path
		if len(cfg.Apps.Candidates) > 0 {
			o.appsCandidates = append([]string(nil), cfg.Apps.Candidates...)
		}
	}
}
