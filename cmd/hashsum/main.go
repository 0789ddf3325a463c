package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"hashlib/internal/config"
	"hashlib/internal/hashing"
	"hashlib/internal/models"

	//Import registered hash providers here
	_ "hashlib/internal/hashing/blake3"
	_ "hashlib/internal/hashing/combined"
	_ "hashlib/internal/hashing/sha256"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	algorithm  string
	text       string
	textSet    bool
	list       bool
	providers  bool
	jsonOutput bool
	configPath string
	verbose    bool
	files      []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	flags := pflag.NewFlagSet("hashsum", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: hashsum [flags] [FILE...]")
		fmt.Fprintln(stderr, "With no FILE, or when FILE is -, read standard input.")
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
	}

	o := &options{}
	flags.StringVarP(&o.algorithm, "algorithm", "a", "", "hash algorithm (default: first configured algorithm)")
	flags.StringVarP(&o.text, "string", "s", "", "hash this string instead of files")
	flags.BoolVar(&o.list, "list", false, "list registered algorithms")
	flags.BoolVar(&o.providers, "providers", false, "list hash providers in query order")
	flags.BoolVar(&o.jsonOutput, "json", false, "write output as JSON")
	flags.StringVar(&o.configPath, "config", "", "path to YAML config file (overrides $"+config.EnvConfig+")")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	o.textSet = flags.Changed("string")
	o.files = flags.Args()
	if o.textSet && len(o.files) > 0 {
		return nil, fmt.Errorf("--string cannot be combined with file arguments")
	}
	return o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "hashsum: %v\n", err)
		return exitUsage
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "hashsum: loading configuration: %v\n", err)
		return exitUsage
	}

	level, _ := cfg.SlogLevel()
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if o.providers {
		return writeListing(stdout, stderr, o.jsonOutput, hashing.ListProviders())
	}

	loadOptions := []hashing.Option{hashing.WithLogger(logger)}
	if len(cfg.Providers) > 0 {
		providers, err := hashing.ProvidersByName(cfg.Providers)
		if err != nil {
			logger.Error("invalid provider order", "error", err)
			return exitUsage
		}
		loadOptions = append(loadOptions, hashing.WithProviders(providers...))
	}

	registry, err := hashing.Load(cfg.Algorithms, loadOptions...)
	if err != nil {
		logger.Error("failed to initialize hash registry", "error", err)
		return exitUsage
	}

	if o.list {
		return writeListing(stdout, stderr, o.jsonOutput, registry.Describe())
	}

	algorithm := o.algorithm
	if algorithm == "" {
		algorithm = cfg.Algorithms[0]
	}
	if !registry.Supports(algorithm) {
		logger.Error("cannot hash", "error", &hashing.UnsupportedAlgorithmError{Algorithm: algorithm},
			"supported", strings.Join(registry.Algorithms(), ","))
		return exitUsage
	}

	var results []models.DigestResult
	status := exitOK
	if o.textSet {
		sum, err := registry.Sum(algorithm, []byte(o.text))
		if err != nil {
			logger.Error("hashing string failed", "error", err)
			return exitError
		}
		results = append(results, models.DigestResult{
			Algorithm: algorithm,
			Source:    fmt.Sprintf("%q", o.text),
			Digest:    fmt.Sprintf("%x", sum),
		})
	} else {
		files := o.files
		if len(files) == 0 {
			files = []string{"-"}
		}
		for _, name := range files {
			digest, err := digestFile(registry, algorithm, name, stdin)
			if err != nil {
				logger.Error("hashing failed", "file", name, "error", err)
				status = exitError
				continue
			}
			results = append(results, models.DigestResult{Algorithm: algorithm, Source: name, Digest: digest})
		}
	}

	if o.jsonOutput {
		if code := writeListing(stdout, stderr, true, results); code != exitOK {
			return code
		}
		return status
	}
	for _, result := range results {
		fmt.Fprintf(stdout, "%s  %s\n", result.Digest, result.Source)
	}
	return status
}

func digestFile(registry *hashing.Registry, algorithm, name string, stdin io.Reader) (string, error) {
	if name == "-" {
		return registry.Digest(algorithm, stdin)
	}
	file, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return registry.Digest(algorithm, file)
}

func writeListing(stdout, stderr io.Writer, asJSON bool, listing any) int {
	if asJSON {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(listing); err != nil {
			fmt.Fprintf(stderr, "hashsum: failed to encode output: %v\n", err)
			return exitError
		}
		return exitOK
	}
	switch entries := listing.(type) {
	case []models.Algorithm:
		for _, a := range entries {
			fmt.Fprintf(stdout, "%-12s %-12s size=%d block=%d\n", a.Name, a.Provider, a.Size, a.BlockSize)
		}
	case []models.Provider:
		for _, p := range entries {
			fmt.Fprintf(stdout, "%-12s priority=%d  %s\n", p.Name, p.Priority, p.Description)
		}
	}
	return exitOK
}
