package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/lci/internal/behavior"
	"github.com/standardbeagle/lci/internal/config"
	"github.com/standardbeagle/lci/internal/langregistry"
	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

// Stats summarizes one Run, returned so callers can log or assert on it
// without the orchestrator knowing anything about logging.
type Stats struct {
	FilesScanned int
	FilesFailed  int
	Symbols      int
	Relationships int
	// RelationshipsDropped counts resolved edges whose (from.Kind, to.Kind,
	// kind) failed the compatibility table (§4.5 "drop invalid pairs
	// (counted)").
	RelationshipsDropped int
}

// Run wires Scanner -> ReadAndParse workers -> Collector -> Indexer through
// bounded channels sized by channelBuffers, the same worker-pool shape as
// the teacher's indexing orchestrator but generalized across all ten
// registered languages instead of switching on one (§4.5, §5). Every stage
// runs under one errgroup so a fatal error or ctx cancellation in any stage
// unwinds the whole pipeline instead of leaking goroutines.
func Run(ctx context.Context, cfg *config.Config, registry *langregistry.Registry, behaviors map[string]behavior.LanguageBehavior, sink RelationshipSink, store resolve.PersistedLookup, classify resolve.Classifier) (Stats, error) {
	taskBuf, resultBuf := channelBuffers()

	tasks := make(chan FileTask, taskBuf)
	units := make(chan ParseUnit, resultBuf)
	batches := make(chan types.IndexBatch, resultBuf)

	g, gctx := errgroup.WithContext(ctx)

	scanner := NewScanner(cfg, registry)
	g.Go(func() error { return scanner.Walk(gctx, tasks) })

	parseWorkers := runtime.NumCPU()
	if parseWorkers < 1 {
		parseWorkers = 1
	}
	g.Go(func() error {
		defer close(units)
		inner, _ := errgroup.WithContext(gctx)
		for i := 0; i < parseWorkers; i++ {
			inner.Go(func() error {
				for {
					select {
					case task, ok := <-tasks:
						if !ok {
							return nil
						}
						unit := ReadAndParse(task, registry)
						select {
						case units <- unit:
						case <-gctx.Done():
							return gctx.Err()
						}
					case <-gctx.Done():
						return gctx.Err()
					}
				}
			})
		}
		return inner.Wait()
	})

	stats := Stats{}
	g.Go(func() error {
		defer close(batches)
		cache := resolve.NewMemCache()
		collector := NewCollector(registry, cache, cfg.WorkspaceRoot)
		for {
			select {
			case unit, ok := <-units:
				if !ok {
					return nil
				}
				stats.FilesScanned++
				if unit.Err != nil {
					stats.FilesFailed++
					continue
				}
				beh, ok := behaviors[unit.LanguageID]
				if !ok {
					continue
				}
				batch := collector.Collect(unit, beh)
				stats.Symbols += len(batch.Symbols)
				select {
				case batches <- batch:
				case <-gctx.Done():
					return gctx.Err()
				}
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	g.Go(func() error {
		indexer := NewIndexer(store, sink, classify, behaviors)
		for {
			select {
			case batch, ok := <-batches:
				if !ok {
					return nil
				}
				sink.ApplyBatch(batch)
				stats.RelationshipsDropped += indexer.ResolveBatch(batch)
				stats.Relationships += len(batch.Unresolved)
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}
