// Package main provides the CLI entry point for areacalc.
//
// areacalc reads a document of shape definitions, sums their areas (or
// volumes) and prints the result in the configured output format.
//
// Usage:
//
//	areacalc sum <file> [--format NAME] [--volume] [--config PATH]
//	areacalc kinds                      - List known shape kinds
//	areacalc formats                    - List output formats
//	areacalc version                    - Show version
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ternarybob/areacalc/internal/config"
	"github.com/ternarybob/areacalc/internal/logger"
	"github.com/ternarybob/areacalc/pkg/calculator"
	"github.com/ternarybob/areacalc/pkg/format"
	"github.com/ternarybob/areacalc/pkg/shape"
)

// version is set via -ldflags at build time
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "sum":
		err = cmdSum(args, os.Stdin, os.Stdout)
	case "kinds":
		cmdKinds(os.Stdout)
	case "formats":
		cmdFormats(os.Stdout)
	case "version", "-v", "--version":
		cmdVersion(os.Stdout)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage(os.Stdout)
		os.Exit(1)
	}

	logger.Stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `areacalc - Sum the areas of a collection of shapes

Commands:
  sum <file> [options]   Sum the shapes described in <file> ("-" reads stdin)
  kinds                  List known shape kinds and their parameters
  formats                List output formats
  version                Show version information
  help                   Show this help

Options for sum:
  --format NAME          Output format (text, html, json, yaml, toml)
  --volume               Sum volumes instead of areas (solids only)
  --config PATH          Config file (YAML or TOML)

Environment:
  AREACALC_FORMAT        Overrides output.format
  AREACALC_LOG_LEVEL     Overrides logging.level

Shape document (YAML, JSON or TOML, chosen by extension):
  shapes:
    - kind: circle
      radius: 2
    - kind: square
      length: 5`)
}

func cmdVersion(w io.Writer) {
	fmt.Fprintf(w, "areacalc version %s\n", version)
}

func cmdKinds(w io.Writer) {
	for _, entry := range shape.DefaultCatalog().Entries() {
		fmt.Fprintf(w, "%-10s %s\n", entry.Kind, strings.Join(entry.Params, ", "))
	}
}

func cmdFormats(w io.Writer) {
	for _, name := range format.Formats() {
		fmt.Fprintln(w, name)
	}
}

// sumOptions holds the parsed arguments of the sum command.
type sumOptions struct {
	path       string
	format     string
	configPath string
	volume     bool
}

func parseSumArgs(args []string) (sumOptions, error) {
	var opts sumOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format", "-f":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", args[i])
			}
			opts.format = args[i+1]
			i++
		case "--config", "-c":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", args[i])
			}
			opts.configPath = args[i+1]
			i++
		case "--volume":
			opts.volume = true
		default:
			if strings.HasPrefix(args[i], "--") {
				return opts, fmt.Errorf("unknown option: %s", args[i])
			}
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument: %s", args[i])
			}
			opts.path = args[i]
		}
	}
	return opts, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// cmdSum loads a shape document and prints the formatted sum.
func cmdSum(args []string, stdin io.Reader, out io.Writer) error {
	opts, err := parseSumArgs(args)
	if err != nil {
		return fmt.Errorf("usage: areacalc sum <file> [--format NAME] [--volume]: %w", err)
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logger.SetupLogger(cfg)

	path := opts.path
	if path == "" {
		path = cfg.Input.Path
	}
	if path == "" {
		return fmt.Errorf("usage: areacalc sum <file>: no shape document given")
	}

	defs, err := readDefinitions(path, stdin)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to read shape document")
		return err
	}
	log.Debug().Str("path", path).Str("definitions", strconv.Itoa(len(defs))).Msg("Loaded shape document")

	shapes, err := shape.DefaultCatalog().BuildAll(defs)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to build shapes")
		return fmt.Errorf("build shapes: %w", err)
	}

	values := make([]any, len(shapes))
	for i, s := range shapes {
		values[i] = s
		if k, ok := s.(shape.Kinded); ok {
			log.Debug().Str("index", strconv.Itoa(i)).Str("kind", k.Kind()).Msg("Built shape")
		}
	}

	var summer calculator.Summer
	label := cfg.Output.Label
	if opts.volume {
		summer = calculator.VolumeFromValues(values...)
		if label == "" {
			label = format.VolumeLabel
		}
	} else {
		summer = calculator.FromValues(values...)
		if label == "" {
			label = format.AreaLabel
		}
	}

	f := format.New(summer, format.WithLabel(label))
	result, err := f.Render(cfg.Output.Format)
	if err != nil {
		log.Error().Err(err).Str("format", cfg.Output.Format).Msg("Failed to render result")
		return fmt.Errorf("render %s: %w", cfg.Output.Format, err)
	}

	log.Info().Str("format", cfg.Output.Format).Str("label", f.Label()).Str("shapes", strconv.Itoa(len(shapes))).Msg("Rendered result")

	fmt.Fprintln(out, strings.TrimRight(result, "\n"))
	return nil
}

// readDefinitions reads a shape document from path, or from stdin when path
// is "-". Stdin is parsed as YAML, which also accepts JSON.
func readDefinitions(path string, stdin io.Reader) ([]shape.Definition, error) {
	if path != "-" {
		return shape.LoadDocument(path)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return shape.ParseDocument(data, shape.DocumentYAML)
}
