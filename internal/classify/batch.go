package classify

import (
	"context"

	"golang.org/x/sync/errgroup"

	"anggaran/internal/core"
)

// DefaultConcurrency bounds parallel classification calls. Keyword
// classification is cheap either way; the bound matters for the external
// variant.
const DefaultConcurrency = 4

// All classifies every transaction and returns a new slice in the original
// row order. Rows are independent failure domains: classifiers are total, so
// a degraded row only affects itself. Aggregation runs strictly after this
// returns.
//
// Identical descriptions within a run are classified once via an in-memory
// memo; the memo does not outlive the cache passed in.
func All(ctx context.Context, c Classifier, txs []core.Transaction, concurrency int) []core.Transaction {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	out := make([]core.Transaction, len(txs))
	copy(out, txs)

	memo := newLabelCache(len(txs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range out {
		g.Go(func() error {
			key := core.NormalizeDescription(out[i].Description)
			if label, ok := memo.Get(key); ok {
				out[i].Category = label
				return nil
			}
			label := c.Classify(ctx, out[i].Description)
			if !label.IsValid() {
				label = core.TidakTerkategori
			}
			memo.Set(key, label)
			out[i].Category = label
			return nil
		})
	}
	// Workers never return errors; classification failures degrade per row.
	_ = g.Wait()

	return out
}
