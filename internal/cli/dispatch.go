// Package cli builds the fetch_input and init_day cobra commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NielsdaWheelz/aocday/internal/config"
	"github.com/NielsdaWheelz/aocday/internal/errors"
	"github.com/NielsdaWheelz/aocday/internal/fs"
	"github.com/NielsdaWheelz/aocday/internal/logging"
	"github.com/NielsdaWheelz/aocday/internal/paths"
	"github.com/NielsdaWheelz/aocday/internal/version"
)

// Deps are the process-level inputs of a command run.
type Deps struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    paths.Env
	// HomeDir locates the default config file. Empty skips it.
	HomeDir string
	FS      fs.FS
	// Transport for the input request; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// OSDeps returns Deps wired to the real process.
func OSDeps() Deps {
	home, _ := os.UserHomeDir()
	return Deps{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Env:     paths.OSEnv{},
		HomeDir: home,
		FS:      fs.NewRealFS(),
	}
}

// RunFetch runs fetch_input with args (program name excluded).
// Returns an error if the command fails; the caller should print the error and exit.
func RunFetch(ctx context.Context, args []string, d Deps) error {
	return execute(ctx, newFetchCommand(d), args, d)
}

// RunInitDay runs init_day with args (program name excluded).
// Returns an error if the command fails; the caller should print the error and exit.
func RunInitDay(ctx context.Context, args []string, d Deps) error {
	return execute(ctx, newInitDayCommand(d), args, d)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, d Deps) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(d.Stdin)
	cmd.SetOut(d.Stdout)
	cmd.SetErr(d.Stderr)
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		// help wins before the remaining args are parsed
		cmd.InitDefaultHelpFlag()
		cmd.InitDefaultVersionFlag()
		return cmd.Help()
	}
	return cmd.ExecuteContext(ctx)
}

// session is what PersistentPreRunE prepares for RunE.
type session struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    config.Config
}

// newRoot applies the settings shared by both commands.
func newRoot(s *session, d Deps, use, short, long string, nargs int, usageCode errors.Code) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != nargs {
				return usageError(cmd, usageCode, fmt.Sprintf("expected %d arguments, got %d", nargs, len(args)))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s.logger = logging.New(cmd.ErrOrStderr(), s.verbose)
			cfg, err := loadConfig(d, s.configPath)
			if err != nil {
				return err
			}
			s.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, usageCode, err.Error())
	})

	flags := cmd.Flags()
	// year and day are opaque; "2023 -1" must reach the URL as given
	flags.SetInterspersed(false)
	flags.BoolVar(&s.verbose, "verbose", false, "log debug output to stderr")
	flags.StringVar(&s.configPath, "config", "", "config file (default: <config dir>/config.yaml)")
	return cmd
}

// usageError prints the usage to stderr and returns a usage error.
func usageError(cmd *cobra.Command, code errors.Code, msg string) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return errors.New(code, msg)
}

// loadConfig reads the explicit config file, or the default one if present.
func loadConfig(d Deps, explicit string) (config.Config, error) {
	filesystem := d.FS
	if filesystem == nil {
		filesystem = fs.NewRealFS()
	}
	env := d.Env
	if env == nil {
		env = paths.OSEnv{}
	}
	if explicit != "" {
		return config.Load(filesystem, explicit, true, env)
	}

	path := ""
	if d.HomeDir != "" || env.Get("AOC_CONFIG_DIR") != "" {
		path = paths.DefaultConfigFile(env, d.HomeDir)
	}
	return config.Load(filesystem, path, false, env)
}
