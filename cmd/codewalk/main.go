package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/lci/internal/behavior"
	"github.com/standardbeagle/lci/internal/config"
	"github.com/standardbeagle/lci/internal/debug"
	"github.com/standardbeagle/lci/internal/langregistry"
	"github.com/standardbeagle/lci/internal/parser"
	"github.com/standardbeagle/lci/internal/pipeline"
	"github.com/standardbeagle/lci/internal/query"
	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/store"
	"github.com/standardbeagle/lci/internal/store/persist"
	"github.com/standardbeagle/lci/internal/toolserver"
	"github.com/standardbeagle/lci/internal/types"
	"github.com/standardbeagle/lci/internal/version"
	"github.com/standardbeagle/lci/internal/watch"
)

var Version = version.Version

// buildRegistry registers every built-in language's parser and behavior
// factory pair (parser.Factories, behavior.Factories) under the extension
// table written out below, then finalizes it so
// Scanner.ForExtension calls never race a late Register.
func buildRegistry() *langregistry.Registry {
	extensions := map[string][]string{
		"go":         {".go"},
		"python":     {".py"},
		"javascript": {".js", ".jsx", ".mjs"},
		"typescript": {".ts", ".tsx"},
		"java":       {".java"},
		"rust":       {".rs"},
		"csharp":     {".cs"},
		"php":        {".php"},
		"cpp":        {".cpp", ".cc", ".cxx", ".hpp", ".h"},
		"zig":        {".zig"},
	}
	parsers := parser.Factories()
	behaviors := behavior.Factories()

	reg := langregistry.New()
	for id, exts := range extensions {
		newParser, ok := parsers[id]
		if !ok {
			continue
		}
		newBehavior, ok := behaviors[id]
		if !ok {
			continue
		}
		reg.Register(langregistry.Definition{
			ID:          id,
			Extensions:  exts,
			NewParser:   func() langregistry.Parser { return newParser() },
			NewBehavior: func() langregistry.Behavior { return newBehavior() },
			Enabled:     true,
		})
	}
	reg.Finalize()
	return reg
}

func behaviorMap() map[string]behavior.LanguageBehavior {
	out := make(map[string]behavior.LanguageBehavior)
	for id, newBehavior := range behavior.Factories() {
		out[id] = newBehavior()
	}
	return out
}

// relativeImportClassifier is the resolve.Classifier every index build
// passes to pipeline.Run: relative-looking paths are Internal,
// everything else Unknown until external-stub resolution at INDEX time.
func relativeImportClassifier(importPath string) (types.ImportOrigin, string) {
	if len(importPath) > 0 && importPath[0] == '.' {
		return types.OriginInternal, importPath
	}
	return types.OriginUnknown, ""
}

func buildIndex(ctx context.Context, cfg *config.Config) (*store.Store, pipeline.Stats, error) {
	registry := buildRegistry()
	behaviors := behaviorMap()
	st := store.New(4096)

	stats, err := pipeline.Run(ctx, cfg, registry, behaviors, st, st, resolve.Classifier(relativeImportClassifier))
	if err != nil {
		return nil, stats, err
	}
	return st, stats, nil
}

func writeMeta(cfg *config.Config, st *store.Store, stats pipeline.Stats) error {
	if err := os.MkdirAll(cfg.IndexPath, 0o755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}
	meta := persist.Meta{
		BuiltAt:       time.Now(),
		FileCount:     st.Count(),
		SymbolCount:   st.Len(),
		VectorDim:     0,
		SchemaVersion: 1,
	}
	return persist.WriteMeta(cfg.IndexPath, meta)
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	root := c.String("root")
	if root == "" {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
	}
	cfg, err := config.LoadKDL(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if mode := c.String("mode"); mode != "" {
		cfg.Server.Mode = config.ServerMode(mode)
	}
	return cfg, nil
}

func indexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return debug.Fatal("%v\n", err)
	}

	start := time.Now()
	st, stats, err := buildIndex(context.Background(), cfg)
	if err != nil {
		return debug.Fatal("indexing failed: %v\n", err)
	}
	if err := writeMeta(cfg, st, stats); err != nil {
		return debug.Fatal("writing index metadata: %v\n", err)
	}
	debug.LogIndexing("indexed %d files (%d failed), %d symbols, %d relationships (%d dropped) in %s\n",
		stats.FilesScanned, stats.FilesFailed, stats.Symbols, stats.Relationships, stats.RelationshipsDropped, time.Since(start))

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(map[string]any{
			"files_scanned":         stats.FilesScanned,
			"files_failed":          stats.FilesFailed,
			"symbols":               stats.Symbols,
			"relationships":         stats.Relationships,
			"relationships_dropped": stats.RelationshipsDropped,
		})
	}
	return nil
}

func serveCommand(c *cli.Context) error {
	debug.SetMCPMode(true)
	cfg, err := loadConfig(c)
	if err != nil {
		return debug.Fatal("%v\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, stats, err := buildIndex(ctx, cfg)
	if err != nil {
		return debug.Fatal("indexing failed: %v\n", err)
	}
	if err := writeMeta(cfg, st, stats); err != nil {
		debug.LogMCP("warning: writing index metadata: %v\n", err)
	}
	debug.LogMCP("initial index: %d files, %d symbols, %d relationships\n",
		stats.FilesScanned, stats.Symbols, stats.Relationships)

	if cfg.FileWatch.Enabled {
		handler := func(path string, action watch.Action) {
			debug.LogMCP("rebuilding index after %s %s\n", action, path)
			newStore, newStats, err := buildIndex(ctx, cfg)
			if err != nil {
				debug.LogMCP("rebuild failed: %v\n", err)
				return
			}
			// Swap the rebuilt store's fields into the live one in place;
				// every field here is a pointer, so this is safe against a
				// torn partial write but not linearizable against concurrent
				// queries (see DESIGN.md's cmd/codewalk known simplification).
				*st = *newStore
			if err := writeMeta(cfg, st, newStats); err != nil {
				debug.LogMCP("warning: writing index metadata: %v\n", err)
			}
		}
		watcher, err := watch.NewUnifiedWatcher(cfg, handler)
		if err != nil {
			debug.LogMCP("warning: file watch disabled: %v\n", err)
		} else if err := watcher.Start(ctx); err != nil {
			debug.LogMCP("warning: file watch failed to start: %v\n", err)
		} else {
			defer watcher.Stop()
		}
	}

	svc := query.New(st, nil, nil, cfg.Semantic.Model)
	srv := toolserver.New(svc, cfg.IndexPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		debug.LogMCP("starting tool server in %s mode\n", cfg.Server.Mode)
		errChan <- srv.Start(ctx, toolserver.Config{Mode: toolserver.Mode(cfg.Server.Mode), Bind: cfg.Server.Bind})
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return debug.Fatal("tool server error: %v\n", err)
		}
		return nil
	case sig := <-sigChan:
		debug.LogMCP("received signal %v, shutting down\n", sig)
		cancel()
		return nil
	}
}

func configInitCommand(c *cli.Context) error {
	root := c.String("root")
	if root == "" {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return debug.Fatal("resolving working directory: %v\n", err)
		}
	}
	path := root + "/.codewalk.kdl"
	if _, err := os.Stat(path); err == nil {
		return debug.Fatal("%s already exists\n", path)
	}
	const template = `// codewalk project configuration
index_path ".codewalk-index"
file_watch {
    enabled true
    debounce_ms 500
}
server {
    mode "stdio"
}
`
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return debug.Fatal("writing %s: %v\n", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func main() {
	app := &cli.App{
		Name:    "codewalk",
		Usage:   "multi-language code intelligence indexer and tool server",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "project root to index (defaults to the working directory)",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "tool-protocol transport: stdio, http, or https",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "index",
				Usage: "build the index once and report statistics",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "output statistics as JSON"},
				},
				Action: indexCommand,
			},
			{
				Name:   "serve",
				Usage:  "build the index and serve tool requests until interrupted",
				Action: serveCommand,
			},
			{
				Name:   "config",
				Usage:  "configuration file management",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "write a default .codewalk.kdl in the project root",
						Action: configInitCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
