package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todofile/internal/config"
	"github.com/idilsaglam/todofile/internal/logging"
	"github.com/idilsaglam/todofile/internal/model"
	"github.com/idilsaglam/todofile/internal/store/jsonstore"
	"github.com/idilsaglam/todofile/internal/tui"
	"github.com/idilsaglam/todofile/internal/ui"
)

// Options wires the runner to its output streams. Nil writers mean
// os.Stdout / os.Stderr.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

// swapped out in tests; the real browser needs a terminal
var browse = tui.Browse

type flagValues struct {
	configPath string
	format     string
	theme      string
	color      string
	group      bool
	browse     bool
	logLevel   string
	logFormat  string
}

// Run executes one invocation and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}

	cmd := newRootCommand(opt)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	ui.Fail(opt.Stderr, err.Error())
	code := exitCode(err)
	if code == ExitUsage {
		fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("usage: "+cmd.UseLine()))
	}
	return code
}

func newRootCommand(opt Options) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "todo <file-path> <task-description>",
		Short: "Append a task to a JSON to-do list and print the list",
		Long: `todo appends one task to the JSON list stored at <file-path>, creating the
file if it does not exist, then prints every stored task.`,
		Example: `  todo tasks.json "Buy milk"
  todo --format plain tasks.json "Write spec"
  todo --browse tasks.json "Call mom"
  todo tasks.json "-5 minutes of stretching"

Flags go before <file-path>; everything after it is positional.`,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return usageError(err)
			}
			setup(cfg, opt)
			return appendAndPrint(opt, cfg, args[0], args[1], fv.browse)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(opt.Stdout)
	cmd.SetErr(opt.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	f := cmd.Flags()
	// a description may start with "-"
	f.SetInterspersed(false)
	f.StringVar(&fv.configPath, "config", "", "path to a TOML config file")
	f.StringVar(&fv.format, "format", config.DefaultFormat, "output format: panel, plain or json")
	f.StringVar(&fv.theme, "theme", config.DefaultTheme, "panel theme: classic, neon or mono")
	f.StringVar(&fv.color, "color", config.DefaultColor, "color output: auto, always or never")
	f.BoolVar(&fv.group, "group", false, "group the panel by pending/done")
	f.BoolVar(&fv.browse, "browse", false, "open an interactive list after printing")
	f.StringVar(&fv.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	f.StringVar(&fv.logFormat, "log-format", config.DefaultLogFormat, "log format: text, json or logfmt")
	return cmd
}

// resolveConfig layers explicitly set flags over the loaded config.
func resolveConfig(cmd *cobra.Command, fv flagValues) (*config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = fv.format
	}
	if changed("theme") {
		cfg.Theme = fv.theme
	}
	if changed("color") {
		cfg.Color = fv.color
	}
	if changed("group") {
		cfg.Group = fv.group
	}
	if changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = fv.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(cfg *config.Config, opt Options) {
	log.SetDefault(logging.New(opt.Stderr, cfg.LogLevel, cfg.LogFormat))
	ui.SetTheme(cfg.Theme)
	ui.SetColorMode(cfg.Color)
	if cfg.Source != "" {
		log.Debug("loaded config", "path", cfg.Source)
	}
}

func appendAndPrint(opt Options, cfg *config.Config, path, description string, interactive bool) error {
	if err := jsonstore.Append(path, description, false); err != nil {
		return fmt.Errorf("append: %w", err)
	}
	tasks, err := jsonstore.Load(path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	log.Info("added task", "path", path, "total", len(tasks))

	if err := printTasks(opt.Stdout, cfg, tasks); err != nil {
		return err
	}
	if cfg.Format == config.FormatPanel {
		ui.OK(opt.Stderr, "added")
	}
	if interactive {
		if err := browse(tasks, path); err != nil {
			return fmt.Errorf("browse: %w", err)
		}
	}
	return nil
}

func printTasks(w io.Writer, cfg *config.Config, tasks []model.Task) error {
	switch cfg.Format {
	case config.FormatPlain:
		fmt.Fprintln(w, "Todos:")
		for _, t := range tasks {
			fmt.Fprintln(w, t.String())
		}
	case config.FormatJSON:
		b, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		fmt.Fprintln(w, string(b))
	case config.FormatPanel:
		ui.Panel(w, ui.ListLines(tasks, cfg.Group))
	default:
		return errors.New("unknown format " + cfg.Format)
	}
	return nil
}
