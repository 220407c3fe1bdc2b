package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	json "github.com/goccy/go-json"

	kelari "github.com/agsn10/kelari-api-documentation-sub001"
	"github.com/agsn10/kelari-api-documentation-sub001/cache"
	"github.com/agsn10/kelari-api-documentation-sub001/internal/mcpserver"
	"github.com/agsn10/kelari-api-documentation-sub001/loader"
	"github.com/agsn10/kelari-api-documentation-sub001/resolver"
	"github.com/agsn10/kelari-api-documentation-sub001/spec"
	"github.com/agsn10/kelari-api-documentation-sub001/validator"
)

//go:embed bundled
var bundledRoot embed.FS

// bundledDocs exposes the packaged sample documents under their bare names,
// so "petstore.yaml" resolves without the bundled/ prefix.
func bundledDocs() fs.FS {
	sub, err := fs.Sub(bundledRoot, "bundled")
	if err != nil {
		return nil
	}
	return sub
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("kelari v%s\n", kelari.Version())
	case "help", "-h", "--help":
		printUsage()
	case "load":
		if err := handleLoad(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "resolve":
		if err := handleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := handleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// sourceFlags are shared by every document-reading command.
type sourceFlags struct {
	kind    string
	noCache bool
}

func registerSourceFlags(fs *flag.FlagSet, flags *sourceFlags) {
	fs.StringVar(&flags.kind, "kind", "", "source kind: url, file, or bundled (auto-detected when empty)")
	fs.BoolVar(&flags.noCache, "no-cache", false, "skip the on-disk document cache")
}

// location maps the positional argument to a loader.Location, honoring an
// explicit -kind flag.
func (f *sourceFlags) location(value string) (loader.Location, error) {
	switch f.kind {
	case "":
		return loader.Location{Value: value, Kind: loader.DetectKind(value)}, nil
	case string(loader.KindURL), string(loader.KindFile), string(loader.KindBundled):
		return loader.Location{Value: value, Kind: loader.SourceKind(f.kind)}, nil
	default:
		return loader.Location{}, fmt.Errorf("unknown kind %q; valid kinds: url, file, bundled", f.kind)
	}
}

// newLoader builds a loader with the bundled documents attached and,
// unless disabled, the on-disk cache.
func (f *sourceFlags) newLoader() (*loader.Loader, error) {
	acq := loader.NewAcquirer()
	acq.Bundled = bundledDocs()

	opts := []loader.Option{loader.WithAcquirer(acq)}
	if !f.noCache {
		store, err := cache.NewFileStore()
		if err != nil {
			return nil, err
		}
		opts = append(opts, loader.WithStore(store))
	}
	return loader.New(opts...)
}

// load resolves the positional argument into a parsed document.
func (f *sourceFlags) load(value string) (loader.Location, *spec.Document, error) {
	loc, err := f.location(value)
	if err != nil {
		return loader.Location{}, nil, err
	}
	l, err := f.newLoader()
	if err != nil {
		return loader.Location{}, nil, err
	}
	doc, err := l.Load(loc.Value, loc.Kind)
	if err != nil {
		return loader.Location{}, nil, err
	}
	return loc, doc, nil
}

func setupLoadFlags() (*flag.FlagSet, *loadFlags) {
	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	flags := &loadFlags{}

	registerSourceFlags(fs, &flags.source)
	fs.BoolVar(&flags.full, "full", false, "print the full document as JSON after the summary")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: kelari load [flags] <file|url|bundled name>\n\n")
		_, _ = fmt.Fprintf(output, "Load a document and print a structural summary.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  kelari load openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  kelari load https://example.com/api/openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  kelari load -kind bundled petstore.yaml\n")
	}

	return fs, flags
}

// loadFlags contains flags for the load command
type loadFlags struct {
	source sourceFlags
	full   bool
}

func handleLoad(args []string) error {
	fs, flags := setupLoadFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("load command requires exactly one file path, URL, or bundled name")
	}

	loc, doc, err := flags.source.load(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Printf("kelari v%s\n", kelari.Version())
	fmt.Printf("Document: %s\n", loc)
	fmt.Printf("OAS Version: %s\n", doc.OpenAPI)
	if doc.Info != nil {
		fmt.Printf("Title: %s\n", doc.Info.Title)
		if doc.Info.Description != "" {
			fmt.Printf("Description: %s\n", doc.Info.Description)
		}
		fmt.Printf("Version: %s\n", doc.Info.Version)
	}
	fmt.Printf("Servers: %d\n", len(doc.Servers))
	fmt.Printf("Paths: %d\n", doc.Paths.Len())

	if flags.full {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling to JSON: %w", err)
		}
		fmt.Printf("\n%s\n", data)
	}

	return nil
}

func setupResolveFlags() (*flag.FlagSet, *resolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &resolveFlags{}

	registerSourceFlags(fs, &flags.source)
	fs.StringVar(&flags.path, "path", "", "path template to look up, e.g. /pets/{petId} (required)")
	fs.StringVar(&flags.method, "method", "get", "HTTP method of the operation")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: kelari resolve [flags] <file|url|bundled name>\n\n")
		_, _ = fmt.Fprintf(output, "Resolve the response schema for a path and method.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  kelari resolve -path /pets openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  kelari resolve -path /pets/{petId} -method get openapi.yaml\n")
	}

	return fs, flags
}

// resolveFlags contains flags for the resolve command
type resolveFlags struct {
	source sourceFlags
	path   string
	method string
}

func handleResolve(args []string) error {
	fs, flags := setupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resolve command requires exactly one file path, URL, or bundled name")
	}
	if flags.path == "" {
		fs.Usage()
		return fmt.Errorf("resolve command requires -path")
	}

	_, doc, err := flags.source.load(fs.Arg(0))
	if err != nil {
		return err
	}

	node := resolver.New(doc).ResolveSchemaFromPath(flags.path, flags.method)
	if node == nil {
		return fmt.Errorf("no schema found for %s %s", flags.method, flags.path)
	}

	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func setupValidateFlags() (*flag.FlagSet, *validateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &validateFlags{}

	registerSourceFlags(fs, &flags.source)

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: kelari validate [flags] <file|url|bundled name>\n\n")
		_, _ = fmt.Fprintf(output, "Validate a document's parameter, path, and response declarations.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  kelari validate openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  kelari validate https://example.com/api/openapi.yaml\n")
	}

	return fs, flags
}

// validateFlags contains flags for the validate command
type validateFlags struct {
	source sourceFlags
}

func handleValidate(args []string) error {
	fs, flags := setupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path, URL, or bundled name")
	}

	loc, doc, err := flags.source.load(fs.Arg(0))
	if err != nil {
		return err
	}

	result := validator.New().ValidateDocument(doc)

	fmt.Printf("kelari v%s\n", kelari.Version())
	fmt.Printf("Document: %s\n\n", loc)

	if issues := result.Issues(); len(issues) > 0 {
		fmt.Printf("Issues (%d):\n", len(issues))
		for _, issue := range issues {
			fmt.Printf("  [%s] %s (%s)\n", issue.Code, issue.Message, issue.Context)
		}
		fmt.Println()
	}

	if result.Valid() {
		fmt.Println("✓ Validation passed")
		return nil
	}
	fmt.Printf("✗ Validation failed: %d issue(s)\n", result.Len())
	os.Exit(1)
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx, bundledDocs())
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	commands := []string{"load", "resolve", "validate", "mcp", "version", "help"}
	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`kelari - OpenAPI document loading, resolution, and validation

Usage:
  kelari <command> [options]

Commands:
  load        Load a document and print a structural summary
  resolve     Resolve the response schema for a path and method
  validate    Validate a document's structural declarations
  mcp         Serve the engine over the Model Context Protocol on stdio
  version     Show version information
  help        Show this help message

Examples:
  kelari load openapi.yaml
  kelari load https://example.com/api/openapi.yaml
  kelari load -kind bundled petstore.yaml
  kelari resolve -path /pets -method get openapi.yaml
  kelari validate openapi.yaml

Run 'kelari <command> --help' for more information on a command.`)
}
