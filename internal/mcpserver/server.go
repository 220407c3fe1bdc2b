// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes kelari's document loading, schema resolution, and validation as
// MCP tools over stdio.
package mcpserver

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	kelari "github.com/agsn10/kelari-api-documentation-sub001"
	"github.com/agsn10/kelari-api-documentation-sub001/cache"
	"github.com/agsn10/kelari-api-documentation-sub001/loader"
)

const serverInstructions = `kelari MCP server — loads OpenAPI documents, resolves response schemas, and validates parameter declarations.

Configuration: all defaults are configurable via KELARI_* environment variables set in your MCP client config.

Key settings:
- KELARI_CACHE_ENABLED (default: true) — persist loaded documents on disk
- KELARI_CACHE_DIR — cache directory (default: the user cache dir)
- KELARI_CACHE_NAMESPACE (default: kelari) — prefix for cache file names
- KELARI_HTTP_TIMEOUT (default: 30s) — timeout for URL fetches
- KELARI_ISSUE_LIMIT (default: 100) — default page size for validate output
- KELARI_MAX_INLINE_SIZE (default: 4194304) — byte limit for inline content
- KELARI_LOG_LEVEL (default: info) — minimum level for stderr logs (debug, info, warn, error)

Caching: loaded documents are cached in-process per session, keyed by location and kind. Repeated tool calls against the same document reuse the parsed instance. With the disk cache enabled, parsed documents also survive server restarts.`

// engine bundles the loader shared by every tool handler. Resolver and
// validator instances are cheap and constructed per call.
type engine struct {
	loader *loader.Loader
}

// newEngine builds the shared loader from cfg. bundled may be nil when the
// host binary ships no packaged documents.
//
// Logs go to stderr only: stdout carries the MCP protocol stream.
func newEngine(bundled fs.FS) (*engine, error) {
	acq := loader.NewAcquirer()
	acq.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	acq.Bundled = bundled

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	opts := []loader.Option{
		loader.WithAcquirer(acq),
		loader.WithLogger(loader.NewSlogAdapter(logger)),
	}
	if cfg.CacheEnabled {
		storeOpts := []cache.Option{cache.WithNamespace(cfg.CacheNamespace)}
		if cfg.CacheDir != "" {
			storeOpts = append(storeOpts, cache.WithDir(cfg.CacheDir))
		}
		store, err := cache.NewFileStore(storeOpts...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, loader.WithStore(store))
	}

	l, err := loader.New(opts...)
	if err != nil {
		return nil, err
	}
	return &engine{loader: l}, nil
}

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled. bundled provides the documents
// reachable through the "bundled" source kind; nil disables that kind.
func Run(ctx context.Context, bundled fs.FS) error {
	eng, err := newEngine(bundled)
	if err != nil {
		return err
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "kelari", Version: kelari.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, eng)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server, eng *engine) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "load",
		Description: "Load an OpenAPI document from a file path, URL, bundled name, or inline content. Returns a structural summary: title, version, declared OAS version, path and operation counts, servers, and tags. Use full=true only for small documents.",
	}, eng.handleLoad)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_schema",
		Description: "Resolve the response schema for a path and HTTP method in an OpenAPI document. Picks the 200 response when present, then default, then the first declared response, and returns the schema of its first media type as a plain JSON tree. Returns found=false when the path, method, response, or schema is absent.",
	}, eng.handleResolveSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI document's structure: parameters must declare a schema or content, parameter schemas must carry a type, paths must start with a slash, and response keys must be valid status codes with valid media types. Returns issues with symbolic codes and context locations. Use offset/limit to paginate; the default page size is configurable via KELARI_ISSUE_LIMIT.",
	}, eng.handleValidate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
