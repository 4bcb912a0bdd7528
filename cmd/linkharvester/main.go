// cmd/linkharvester/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/valpere/LinkHarvester/internal/config"
	"github.com/valpere/LinkHarvester/internal/enrich"
	"github.com/valpere/LinkHarvester/internal/export"
	"github.com/valpere/LinkHarvester/internal/extract"
	"github.com/valpere/LinkHarvester/internal/utils"
)

// Version information (set by build flags)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "extract":
		runExtract(os.Args[2:])

	case "template":
		printTemplate()

	case "version", "--version":
		printVersion()

	case "help", "--help", "-h":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command '%s'\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runExtract drives the full pipeline: read input, extract, optionally
// enrich, export. Unexpected panics are caught here so the user sees a
// generic error instead of a stack trace, and no partial output.
func runExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	configFile := fs.String("config", "", "path to YAML configuration file")
	enrichFlag := fs.Bool("enrich", false, "fetch HTTP metadata for each URL")
	format := fs.String("format", "", "output format: json, csv, html, excel")
	outputFile := fs.String("output", "", "output file (default: stdout, json only)")
	verbose := fs.Bool("v", false, "enable verbose output")
	fs.Parse(args)

	level := utils.InfoLevel
	if *verbose {
		level = utils.DebugLevel
	}
	logger := utils.NewLoggerWithLevel(level)

	defer func() {
		if r := recover(); r != nil {
			logger.Debugf("panic: %v", r)
			fmt.Fprintln(os.Stderr, "Error: unexpected failure while processing input")
			os.Exit(1)
		}
	}()

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.LoadFromFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	outFormat, outFile := resolveOutput(cfg, *format, *outputFile)

	input, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := extract.Process(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := &export.Report{Result: result, GeneratedAt: time.Now()}

	if *enrichFlag || cfg.Enrich.Enabled {
		logger.Infof("enriching %d URLs", result.TotalURLsFound)
		fetcher := enrich.NewFetcher(enrich.Config{
			Timeout:   cfg.EnrichTimeout(),
			UserAgent: cfg.Enrich.UserAgent,
			Logger:    logger,
		})
		report.Details = fetcher.FetchAll(context.Background(), result.UniqueURLs)
	}

	if err := writeReport(report, outFormat, outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write results: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d unique URLs, %d stream URLs, %d domains\n",
		result.TotalURLsFound, result.TotalStreamURLs, result.TotalUniqueDomains)
	if outFile != "" {
		fmt.Fprintf(os.Stderr, "Results saved to %s\n", outFile)
	}
}

// resolveOutput merges the configured output with command-line
// overrides; flags win.
func resolveOutput(cfg *config.Config, formatFlag, fileFlag string) (export.Format, string) {
	format := export.Format(cfg.Output.Format)
	if formatFlag != "" {
		format = export.Format(formatFlag)
	}
	file := cfg.Output.File
	if fileFlag != "" {
		file = fileFlag
	}
	return format, file
}

// writeReport sends the report to a file via the export manager, or to
// stdout as JSON when no file is set.
func writeReport(report *export.Report, format export.Format, file string) error {
	if file == "" {
		if format != export.FormatJSON {
			return fmt.Errorf("format %s requires --output FILE", format)
		}
		return export.NewJSONStreamWriter(os.Stdout).Write(report)
	}

	manager, err := export.NewManager(format, file)
	if err != nil {
		return err
	}
	return manager.Write(report)
}

// readInput reads the whole input blob from a file, or from stdin when
// the argument is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %v", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %v", err)
	}
	return string(data), nil
}

func printTemplate() {
	data, err := yaml.Marshal(config.GenerateTemplate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal template: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func printUsage() {
	fmt.Println("LinkHarvester - URL, Stream Link and Domain Extractor")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  linkharvester extract [flags] <file|->    Extract URLs from a JSON or text file (- for stdin)")
	fmt.Println("  linkharvester template                    Generate a configuration template")
	fmt.Println("  linkharvester version                     Show version information")
	fmt.Println("  linkharvester help                        Show this help message")
	fmt.Println()
	fmt.Println("Extract flags:")
	fmt.Println("  --config FILE    Load settings from a YAML configuration file")
	fmt.Println("  --enrich         Fetch title, description and status for each URL")
	fmt.Println("  --format FORMAT  Output format: json, csv, html, excel (default json)")
	fmt.Println("  --output FILE    Write results to FILE instead of stdout")
	fmt.Println("  -v               Enable verbose output")
}

func printVersion() {
	fmt.Printf("LinkHarvester %s\n", version)
	fmt.Printf("Build time: %s\n", buildTime)
	fmt.Printf("Git commit: %s\n", gitCommit)
}
