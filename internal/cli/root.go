// Package cli implements the lrctoolbox command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/lrctoolbox/internal/config"
	"github.com/llehouerou/lrctoolbox/internal/errmsg"
	"github.com/llehouerou/lrctoolbox/internal/logger"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
	"github.com/llehouerou/lrctoolbox/internal/state"
)

// stdinSource reads lyrics from standard input.
const stdinSource = "-"

// app holds the state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string
	verbose    bool

	cfg *config.Config
}

// commandError carries the operation that failed so Execute can print a
// user-facing message.
type commandError struct {
	op      errmsg.Op
	context string
	err     error
}

func (e *commandError) Error() string {
	return errmsg.FormatWith(e.op, e.context, e.err)
}

func (e *commandError) Unwrap() error {
	return e.err
}

func fail(op errmsg.Op, err error) error {
	return failWith(op, "", err)
}

func failWith(op errmsg.Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &commandError{op: op, context: context, err: err}
}

// NewRootCommand builds the lrctoolbox command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lrctoolbox",
		Short: "Parse, convert, fetch and view LRC synced lyrics.",
		Long: `lrctoolbox reads and writes LRC lyrics files.

Lyrics sources are file paths (.lrc or .txt, the extension is guessed when
missing) or - for standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: XDG config dir, then ./lrctoolbox.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		a.showCommand(),
		a.infoCommand(),
		a.convertCommand(),
		a.fetchCommand(),
		a.extractCommand(),
		a.embedCommand(),
		a.viewCommand(),
		a.cacheCommand(),
	)
	return root
}

// setup loads the configuration and initializes logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fail(errmsg.OpConfigLoad, err)
	}
	a.cfg = cfg

	logCfg := cfg.Logger()
	if a.logLevel != "" {
		logCfg.Level = logger.Level(strings.ToLower(a.logLevel))
	}
	if a.verbose {
		logCfg.Level = logger.DebugLevel
	}
	logCfg.Console = cmd.ErrOrStderr()
	if err := logger.Init(logCfg); err != nil {
		return fail(errmsg.OpInitialize, err)
	}

	logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("command", cmd.Name()))
	return nil
}

// Execute runs the command line and exits with status 1 on failure.
func Execute() {
	root := NewRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), errorMessage(err))
		os.Exit(1)
	}
}

func errorMessage(err error) string {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Error()
	}
	return "Error: " + err.Error()
}

// loadSource loads lyrics from a file path, or from in when src is "-".
func loadSource(src string, in io.Reader) (*lyrics.Lyrics, error) {
	if src == stdinSource {
		return lyrics.ParseLRC(in)
	}
	return lyrics.Load(lyrics.Path(src))
}

// sourceName names src in messages and titles.
func sourceName(src string) string {
	if src == stdinSource {
		return "stdin"
	}
	return filepath.Base(src)
}

// openCache opens the fetch cache, honoring the configured location.
func (a *app) openCache() (*state.Cache, error) {
	if a.cfg.Lrclib.CachePath != "" {
		return state.OpenPath(a.cfg.Lrclib.CachePath)
	}
	return state.Open()
}

func writeLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
