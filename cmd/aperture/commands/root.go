// Package commands implements the aperture CLI.
package commands

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/agiangrant/aperture"
)

// Viper keys. Each is also read from APERTURE_<KEY> with dots as underscores.
const (
	keyConfig      = "config"
	keyLibraryPath = "library.path"
	keyLogLevel    = "log.level"
)

// app carries state resolved before any subcommand runs.
type app struct {
	v   *viper.Viper
	cfg aperture.Config
	log *zap.Logger
}

// NewRootCmd builds the aperture command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:     "aperture",
		Short:   "Load and probe the Steamworks runtime",
		Version: aperture.Version,
		Long: `aperture loads steam_api at runtime, initializes it and reports what
the Steamworks interfaces return. Nothing is linked against Steamworks at
build time; the library is located by the system loader or by --lib.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", aperture.DefaultConfigFile, "config file")
	flags.String("lib", "", "path to steam_api (default: platform library name)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	a.v.SetEnvPrefix("APERTURE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag(keyConfig, flags.Lookup("config"))
	_ = a.v.BindPFlag(keyLibraryPath, flags.Lookup("lib"))
	_ = a.v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		newVersionCmd(),
		newLibNameCmd(),
		newConfigCmd(a),
		newProbeCmd(a),
		newWatchCmd(a),
	)

	return root
}

// load resolves configuration with precedence flag > env > file > default.
func (a *app) load() error {
	cfg, err := aperture.LoadConfig(a.v.GetString(keyConfig))
	if err != nil {
		return err
	}
	if lib := a.v.GetString(keyLibraryPath); lib != "" {
		cfg.Library.Path = lib
	}
	if level := a.v.GetString(keyLogLevel); level != "" {
		cfg.Log.Level = level
	}

	log, err := cfg.Log.Build()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	aperture.SetLogger(log)
	return nil
}

func (a *app) configPath() string {
	return a.v.GetString(keyConfig)
}

// styled reports whether w is a terminal worth decorating.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
