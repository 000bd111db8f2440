// mkicon renders the TicTracker app icon and packs it into AppIcon.icns.
// Usage: go run ./cmd/mkicon [options]
package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/Mavwarf/tictracker-icon/internal/config"
	"github.com/Mavwarf/tictracker-icon/internal/fonts"
	"github.com/Mavwarf/tictracker-icon/internal/ico"
	"github.com/Mavwarf/tictracker-icon/internal/icon"
	"github.com/Mavwarf/tictracker-icon/internal/iconset"
	"github.com/Mavwarf/tictracker-icon/internal/iconutil"
	"github.com/Mavwarf/tictracker-icon/internal/log"
	"github.com/Mavwarf/tictracker-icon/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type options struct {
	dir         string
	configPath  string
	tool        string
	ico         bool
	keepIconset bool
	verbose     bool
}

var errHelp = errors.New("help requested")
var errVersion = errors.New("version requested")

func main() {
	opts, err := parseArgs(os.Args[1:])
	switch {
	case errors.Is(err, errHelp):
		printUsage()
		return
	case errors.Is(err, errVersion):
		fmt.Printf("mkicon %s (built %s)\n", version, buildDate)
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'mkicon help' for usage.\n")
		os.Exit(1)
	}

	log.Init(os.Stderr, opts.verbose)
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	opts := options{tool: iconutil.DefaultTool}
	value := func(i int, flag, what string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires %s", flag, what)
		}
		return args[i+1], nil
	}
	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "help", "-h", "--help":
			return opts, errHelp
		case "version", "-V", "--version":
			return opts, errVersion
		case "--dir", "-d":
			opts.dir, err = value(i, args[i], "a directory")
			i++
		case "--config", "-c":
			opts.configPath, err = value(i, args[i], "a file path")
			i++
		case "--tool":
			opts.tool, err = value(i, args[i], "a command name")
			i++
		case "--ico":
			opts.ico = true
		case "--keep-iconset":
			opts.keepIconset = true
		case "--verbose":
			opts.verbose = true
		default:
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// run renders the icon, saves the preview and builds the archive. The
// preview is written before packaging so it survives a packaging failure.
func run(opts options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	st, err := cfg.Style()
	if err != nil {
		return err
	}

	face, fontName, err := fonts.Face(cfg.FontCandidates(), st.TextSize(icon.Size))
	if err != nil {
		log.Warnf("font load failed, using fallback: %v", err)
	}
	defer face.Close()
	log.Infof("font: %s", fontName)

	img := icon.Render(icon.Size, st, face)
	out := paths.In(opts.dir)

	if err := paths.WritePNG(out.Preview, img); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	fmt.Fprintf(stdout, "Saved %s (preview)\n", out.Preview)

	if opts.ico {
		if err := ico.Write(out.ICO, img); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Created %s\n", out.ICO)
	}

	if err := buildArchive(out, img, opts); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Created %s\n", out.Archive)
	return nil
}

// buildArchive writes the iconset, packs it and removes the iconset again,
// whether or not packing succeeded.
func buildArchive(out paths.Outputs, img *image.RGBA, opts options) error {
	written, err := iconset.Write(out.Iconset, img)
	if !opts.keepIconset {
		defer func() {
			if err := os.RemoveAll(out.Iconset); err != nil {
				log.Warnf("remove %s: %v", out.Iconset, err)
			}
		}()
	}
	if err != nil {
		return err
	}
	log.Logger().Info().Int("files", len(written)).Str("dir", out.Iconset).Msg("iconset written")

	return iconutil.Pack(opts.tool, out.Iconset, out.Archive)
}

func printUsage() {
	fmt.Printf("mkicon %s - Render the TicTracker app icon\n", version)
	fmt.Println(`
Usage:
  mkicon [options]

Options:
  --dir, -d <path>       Output directory (default: current directory)
  --config, -c <path>    JSON file overriding text, gradient colors or fonts
  --ico                  Also write AppIcon.ico (256x256)
  --keep-iconset         Do not delete AppIcon.iconset after packing
  --tool <name>          Packaging command (default: iconutil)
  --verbose              Log every generated bitmap
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Outputs:
  AppIcon_1024.png       Full-resolution preview
  AppIcon.icns           macOS icon archive (requires iconutil)

Example config:
  {"text": "+1", "gradient_top": "#2ECCC1", "gradient_bottom": "#3B82F6"}`)
}
