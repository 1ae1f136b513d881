package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lumen/internal/render"
	"lumen/internal/snapshot"
	"lumen/internal/word"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <snapshot>...",
	Short: "Render snapshot values to stdout",
	Long:  `Load one or more value snapshots and print each root value in its textual form`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	registerSettingsFlags(renderCmd)
}

type loadedValue struct {
	renderer *render.Renderer
	root     word.Word
}

func runRender(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Files load and render in parallel; output stays in argument order.
	results := make([]string, len(args))
	g, _ := errgroup.WithContext(cmd.Context())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			start := time.Now()
			lv, stats, err := loadSnapshotFile(path)
			if err != nil {
				return err
			}
			logger.Info("snapshot loaded",
				zap.String("path", path),
				zap.Int("objects", stats.objects),
				zap.Int("types", stats.types),
				zap.Duration("took", time.Since(start)),
			)
			results[i] = lv.renderer.Render(lv.root, settings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, text := range results {
		fmt.Fprintln(out, text)
	}
	return nil
}

type loadStats struct {
	objects int
	types   int
}

func loadSnapshotFile(path string) (loadedValue, loadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return loadedValue{}, loadStats{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	h, table, root, err := snapshot.Decode(f)
	if err != nil {
		return loadedValue{}, loadStats{}, fmt.Errorf("%s: %w", path, err)
	}
	stats := loadStats{objects: h.Len(), types: len(table.Types())}
	return loadedValue{renderer: render.New(h, table), root: root}, stats, nil
}

func buildLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
