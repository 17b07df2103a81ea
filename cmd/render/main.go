package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"sprite-renderer/internal/atlas"
	"sprite-renderer/internal/batch"
	"sprite-renderer/internal/compose"
	"sprite-renderer/internal/config"
	"sprite-renderer/internal/logging"
	"sprite-renderer/internal/roster"
	"sprite-renderer/internal/sprite"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to sprites.toml")
	atlasPath := flag.String("atlas", "", "Atlas directory or .zip (default: auto-detect)")
	rosterFile := flag.String("roster", "", "Roster YAML file")
	outputDir := flag.String("output", "", "Output directory (default: sprites)")
	format := flag.String("format", "", "Output format: png or webp (default: png)")
	generation := flag.String("context", "", "Generation context, e.g. gen7 (default: gen9)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	scale := flag.Int("scale", 0, "Integer upscale of written files (default: 1)")
	only := flag.String("name", "", "Render only the roster entry with this name")
	testN := flag.Int("test", 0, "Render only first N entries for testing")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ParseEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file and environment
	err = cfg.Resolve(config.Flags{
		Atlas:     *atlasPath,
		Roster:    *rosterFile,
		OutputDir: *outputDir,
		Format:    *format,
		Context:   *generation,
		Workers:   *workers,
		Scale:     *scale,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Atlas.Path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot find the sprite atlas. Use -atlas flag or sprites.toml.")
		os.Exit(1)
	}
	if cfg.Roster.File == "" {
		fmt.Fprintln(os.Stderr, "Error: no roster. Use -roster flag or sprites.toml.")
		os.Exit(1)
	}

	// Load roster
	list, err := roster.Load(cfg.Roster.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading roster: %v\n", err)
		os.Exit(1)
	}
	entries := list.Entries

	if *only != "" {
		var filtered []roster.Entry
		for _, e := range entries {
			if e.Name == *only {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	// Limit for testing
	if *testN > 0 && *testN < len(entries) {
		entries = entries[:*testN]
	}

	if len(entries) == 0 {
		fmt.Println("No sprites to render.")
		os.Exit(0)
	}

	// Open atlas
	src, err := atlas.Open(cfg.Atlas.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening atlas: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	enc, err := compose.EncoderFor(cfg.Render.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx := list.ContextOr(cfg.Render.Context)

	renderer, err := sprite.New(src,
		sprite.WithEncoder(enc),
		sprite.WithLogger(log),
		sprite.WithContext(ctx))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error indexing atlas: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Atlas: %d entries indexed\n", renderer.Index().Len())

	// Print summary
	mode := ""
	if *only != "" {
		mode = fmt.Sprintf(" (entry %s)", *only)
	} else if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("Sprite renderer → %s, %s%s\n", renderer.Format(), ctx, mode)
	fmt.Printf("Sprites: %d, Workers: %d\n", len(entries), cfg.Render.Workers)
	fmt.Printf("Output: %s\n", cfg.Output.Dir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Renderer:  renderer,
		Context:   ctx,
		OutputDir: cfg.Output.Dir,
		Workers:   cfg.Render.Workers,
		Scale:     cfg.Render.Scale,
		Log:       log,
	}, entries)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, placeholders := 0, 0
	var failed []batch.Result
	for _, r := range results {
		switch {
		case !r.Success:
			failed = append(failed, r)
		case r.Kind == batch.KindPlaceholder:
			placeholders++
			success++
		default:
			success++
		}
	}

	fmt.Printf("Rendered: %d/%d (%d placeholders)\n", success, len(entries), placeholders)
	log.Debug("decoded atlas images", zap.Int("cached", renderer.ClearCache()))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(20, len(failed))
		for _, r := range failed[:limit] {
			fmt.Printf("  %s: %s\n", r.Entry.Name, r.Error)
		}
	}

	if cfg.Output.Manifest {
		manifestPath := filepath.Join(cfg.Output.Dir, "manifest.json")
		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if len(failed) > 0 {
		log.Sync()
		os.Exit(1)
	}
}
