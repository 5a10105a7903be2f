package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/CyrusCastle/DrawBox/internal/board"
	"github.com/CyrusCastle/DrawBox/internal/config"
	"github.com/CyrusCastle/DrawBox/internal/notify"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs            *flag.FlagSet
	program       string
	notifier      *notify.Notifier
	config        *config.Config
	saveAlerts    bool
	copyAlerts    bool
	captureAlerts bool
	exportAlerts  bool
	saveDir       string
	configPath    string
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	r := &root{
		fs:      flag.NewFlagSet("drawbox", flag.ExitOnError),
		program: "drawbox",
	}
	r.fs.StringVar(&r.configPath, "config", "", "path to an alternate configuration file")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", false, "show a desktop notification after saving a sketch")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.captureAlerts, "notify-capture", false, "show a desktop notification after capturing a background")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", false, "show a desktop notification after a headless export")
	r.fs.StringVar(&r.saveDir, "save-dir", "", "directory sketches are saved into")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}

	override := r.configPath
	if override == "" {
		override = configPathOverride
	}
	loader := config.NewLoader(version, override)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	r.config = cfg

	// Precedence: CLI > Config > Default. The notifier starts from the
	// [notify] config section; explicitly passed flags override it.
	r.notifier = notify.FromConfig(cfg.Notify)
	r.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "notify-save":
			r.notifier.Enable(notify.EventSave, r.saveAlerts)
		case "notify-copy":
			r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		case "notify-capture":
			r.notifier.Enable(notify.EventCapture, r.captureAlerts)
		case "notify-export":
			r.notifier.Enable(notify.EventExport, r.exportAlerts)
		}
	})
	if r.saveDir == "" {
		r.saveDir = cfg.SaveDir
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "sketch":
		cmd, err = parseSketchCmd(subArgs, r)
	case "export":
		cmd, err = parseExportCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd, err = &versionCmd{r: r}, nil
	case "help":
		fmt.Fprint(os.Stdout, (&UsageError{of: r}).Error())
		return nil
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// configureBoard applies the loaded configuration and any style flags to
// a fresh board.
func (r *root) configureBoard(colorSpec string, opacity, strokeWidth, eraserWidth float64) (*board.Board, error) {
	b := board.New()

	spec := colorSpec
	if spec == "" {
		spec = r.config.Color
	}
	if spec != "" {
		col, err := resolveColor(spec, r.config)
		if err != nil {
			return nil, err
		}
		b.SetColor(col)
	}
	if opacity < 0 {
		opacity = r.config.Opacity
	}
	b.SetOpacity(opacity)
	if strokeWidth <= 0 {
		strokeWidth = r.config.StrokeWidth
	}
	b.SetStrokeWidth(strokeWidth)
	if eraserWidth <= 0 {
		eraserWidth = r.config.EraserWidth
	}
	b.SetEraserWidth(eraserWidth)
	return b, nil
}

// resolveColor looks the spec up in the configured palettes before falling
// back to hex values and SVG color names.
func resolveColor(spec string, cfg *config.Config) (color.RGBA, error) {
	if cfg != nil {
		for _, palette := range cfg.Palettes {
			for _, entry := range palette {
				if strings.EqualFold(entry.Name, spec) {
					return entry.Color, nil
				}
			}
		}
	}
	return config.ParseColor(spec)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
