package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ajwerner/avltree/pqueue"
)

// Sample is the timing of a single RemoveMin.
type Sample struct {
	// Removal is the 0-based index of the removal.
	Removal int
	// Remaining is the queue length before the removal.
	Remaining int
	Elapsed   time.Duration
}

// Run is the result of BenchRemoveMin on one implementation.
type Run struct {
	Impl    string
	Size    int
	Samples []Sample
	// Total is the time spent in every RemoveMin, sampled or not.
	Total time.Duration
}

// BenchRemoveMin fills q, which must be empty, with n elements of
// priorities 0 to n-1 and then empties it, timing every RemoveMin. Every
// every-th removal, starting with the first, is recorded as a sample.
func BenchRemoveMin(q pqueue.Queue[int64], n, every int) ([]Sample, time.Duration, error) {
	if every <= 0 {
		return nil, 0, fmt.Errorf("sampling interval must be positive, got %d", every)
	}
	for i := 0; i < n; i++ {
		if err := q.Insert(int64(i), 2*int64(i)+23); err != nil {
			return nil, 0, err
		}
	}
	samples := make([]Sample, 0, (n+every-1)/every)
	var total time.Duration
	for j := 0; j < n; j++ {
		remaining := q.Len()
		start := time.Now()
		_, ok := q.RemoveMin()
		elapsed := time.Since(start)
		if !ok {
			return nil, 0, fmt.Errorf("queue empty after %d of %d removals", j, n)
		}
		total += elapsed
		if j%every == 0 {
			samples = append(samples, Sample{Removal: j, Remaining: remaining, Elapsed: elapsed})
		}
	}
	return samples, total, nil
}

// Report renders runs as a table.
func Report(w io.Writer, runs []Run) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.AppendHeader(table.Row{"impl", "removal", "remaining", "elapsed (ns)"})
	for _, r := range runs {
		for _, s := range r.Samples {
			tbl.AppendRow(table.Row{
				r.Impl,
				humanize.Comma(int64(s.Removal)),
				humanize.Comma(int64(s.Remaining)),
				humanize.Comma(s.Elapsed.Nanoseconds()),
			})
		}
		tbl.AppendSeparator()
	}
	for _, r := range runs {
		tbl.AppendFooter(table.Row{
			r.Impl,
			fmt.Sprintf("%s removals", humanize.Comma(int64(r.Size))),
			"total",
			humanize.Comma(r.Total.Nanoseconds()),
		})
	}
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
