// appicon draws the app icon and writes every iOS asset-catalog size.
// Usage: go run ./cmd/appicon [--out <dir>] [--config <path>]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"

	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/export"
	"github.com/Mavwarf/appicon/internal/icon"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// cliArgs holds parsed command-line values. Zero values mean "not given".
type cliArgs struct {
	command     string // "", "help" or "version"
	configPath  string
	outDir      string
	transparent bool
	contents    bool
}

func main() {
	a, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'appicon help' for usage.\n")
		os.Exit(1)
	}

	switch a.command {
	case "help":
		printUsage()
		return
	case "version":
		printVersion()
		return
	}

	fancy := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(context.Background(), a, os.Stdout, fancy); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (cliArgs, error) {
	var a cliArgs
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 >= len(args) {
				return a, fmt.Errorf("--out requires a directory")
			}
			a.outDir = args[i+1]
			i++
		case "--config", "-c":
			if i+1 >= len(args) {
				return a, fmt.Errorf("--config requires a file path")
			}
			a.configPath = args[i+1]
			i++
		case "--transparent":
			a.transparent = true
		case "--contents":
			a.contents = true
		case "help", "-h", "--help":
			a.command = "help"
		case "version", "-V", "--version":
			a.command = "version"
		default:
			return a, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	return a, nil
}

// resolveConfig loads the config file and applies CLI overrides on top.
func resolveConfig(a cliArgs) (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return cfg, err
	}
	if a.outDir != "" {
		cfg.OutputDir = a.outDir
	}
	if a.transparent {
		cfg.Transparent = true
	}
	if a.contents {
		cfg.ContentsJSON = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, a cliArgs, out io.Writer, fancy bool) error {
	cfg, err := resolveConfig(a)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Generating app icon...")
	base := icon.Render(cfg.IconOptions())

	e := export.Exporter{
		Dir:           cfg.OutputDir,
		WriteContents: cfg.ContentsJSON,
		OnWrite: func(path string, s export.Size) {
			fmt.Fprintf(out, "  %4dx%-4d %s\n", s.Pixels, s.Pixels, path)
		},
	}
	written, err := e.Export(ctx, base, cfg.Sizes)
	if err != nil {
		return err
	}

	if fancy {
		fmt.Fprintf(out, "✅ App icon generated successfully! (%d files)\n", len(written))
		fmt.Fprintf(out, "📁 Saved to: %s\n", cfg.OutputDir)
		fmt.Fprintln(out, "🔄 Clean and rebuild your Xcode project to see the new icon.")
	} else {
		fmt.Fprintf(out, "App icon generated: %d files\n", len(written))
		fmt.Fprintf(out, "Saved to: %s\n", cfg.OutputDir)
	}
	return nil
}

func printVersion() {
	fmt.Printf("appicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("appicon %s - Generate the iOS app icon set\n", version)
	fmt.Println(`
Usage:
  appicon [options]

Options:
  --out, -o <dir>        Output directory (default: AppIcon.appiconset)
  --config, -c <path>    Path to appicon-config.json
  --transparent          Keep rounded-corner transparency (iOS expects opaque icons)
  --contents             Also write an Xcode Contents.json

Commands:
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>                        (explicit)
  2. appicon-config.json next to binary     (portable)
  3. ~/.config/appicon/appicon-config.json  (user default)
  4. built-in defaults`)
}
