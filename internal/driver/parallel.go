package driver

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"pystyle/internal/trace"
)

type unitResult struct {
	report *Report
	err    error
}

// checkUnitsParallel analyses units on a bounded pool and delivers the reports
// in discovery order, stopping at the first failed unit like the sequential path.
func checkUnitsParallel(ctx context.Context, units []string, opts Options, sink func(*Report) error) error {
	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]unitResult, len(units))

	// индекс самого раннего упавшего файла; файлы после него не проверяем
	var stopAt atomic.Int64
	stopAt.Store(int64(len(units)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Jobs, len(units)))

	for i, path := range units {
		g.Go(func() error {
			if int64(i) > stopAt.Load() {
				trace.Point(trace.FromContext(gctx), trace.ScopeModule, "skipped", path)
				return nil
			}
			report, err := checkUnit(gctx, path, opts)
			results[i] = unitResult{report: report, err: err}
			if err != nil {
				lowerStop(&stopAt, int64(i))
			}
			// ошибку не возвращаем: отмена gctx сломала бы файлы до упавшего
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if res.err != nil {
			return res.err
		}
		if res.report == nil {
			continue
		}
		if err := sink(res.report); err != nil {
			return err
		}
	}
	return nil
}

func lowerStop(stopAt *atomic.Int64, idx int64) {
	for {
		cur := stopAt.Load()
		if idx >= cur || stopAt.CompareAndSwap(cur, idx) {
			return
		}
	}
}
