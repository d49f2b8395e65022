// Package extract runs many region extractions against one FASTA file.
package extract

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/inodb/vibe-fasta/internal/fasta"
	"github.com/inodb/vibe-fasta/internal/region"
)

// WorkItem is a region queued for extraction.
type WorkItem struct {
	Seq    int
	Region region.Region
}

// WorkResult holds the extracted sequence for a single region.
type WorkResult struct {
	Seq      int
	Region   region.Region
	Sequence string
	Err      error
}

// RegionSource yields regions; region.Parser implements it.
type RegionSource interface {
	Next() (*region.Region, error)
}

// SequenceWriter receives extracted sequences in input order.
type SequenceWriter interface {
	Write(r region.Region, seq string) error
	Flush() error
}

// Extractor extracts regions from a FASTA file with a pool of workers.
// Each worker opens its own fasta.Handle, so workers never share a cursor.
type Extractor struct {
	path    string
	header  string
	caps    bool
	workers int
	logger  *zap.Logger
}

// New creates an extractor for the FASTA file at path.
// The file is opened once up front so format errors surface immediately.
func New(path string) (*Extractor, error) {
	h, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	return &Extractor{
		path:   path,
		header: h.Header(),
		logger: zap.NewNop(),
	}, nil
}

// Header returns the first header line of the FASTA file, without '>'.
func (e *Extractor) Header() string {
	return e.header
}

// SetCaps configures whether extracted sequences are uppercased.
func (e *Extractor) SetCaps(caps bool) {
	e.caps = caps
}

// SetWorkers sets the worker count. 0 means runtime.NumCPU().
func (e *Extractor) SetWorkers(n int) {
	e.workers = n
}

// SetLogger sets the logger for warning and debug messages.
func (e *Extractor) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Parallel extracts work items using a pool of workers.
// Results are sent to the returned channel in arrival order (not sequence order).
// Use OrderedCollect to consume results in sequence-number order.
func (e *Extractor) Parallel(items <-chan WorkItem) <-chan WorkResult {
	workers := e.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			h, err := fasta.Open(e.path)
			if err == nil {
				h.SetLogger(e.logger)
				defer h.Close()
			}

			for item := range items {
				res := WorkResult{Seq: item.Seq, Region: item.Region, Err: err}
				if err == nil {
					res.Sequence, res.Err = h.GetSequence(item.Region.Start, item.Region.End, e.caps)
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them
// as soon as the next expected sequence number is available.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

// Stats summarizes an ExtractAll run.
type Stats struct {
	Regions int
	Failed  int
	Bases   int64
}

// ExtractAll extracts every region from src and writes the sequences to w
// in input order. Regions that fail are logged, counted and skipped; an
// error is returned only for read or write failures. On a read failure the
// regions read before it are still written and flushed.
func (e *Extractor) ExtractAll(src RegionSource, w SequenceWriter) (Stats, error) {
	workers := e.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	items := make(chan WorkItem, 2*workers)
	var readErr error
	var stats Stats

	go func() {
		defer close(items)
		seq := 0
		for {
			r, err := src.Next()
			if err != nil {
				readErr = fmt.Errorf("read region: %w", err)
				return
			}
			if r == nil {
				return
			}
			items <- WorkItem{Seq: seq, Region: *r}
			seq++
		}
	}()

	results := e.Parallel(items)

	if err := OrderedCollect(results, func(r WorkResult) error {
		stats.Regions++
		if r.Err != nil {
			stats.Failed++
			e.logger.Warn("failed to extract region",
				zap.String("region", r.Region.String()),
				zap.Error(r.Err))
			return nil
		}
		stats.Bases += int64(len(r.Sequence))
		if err := w.Write(r.Region, r.Sequence); err != nil {
			return fmt.Errorf("write sequence: %w", err)
		}
		return nil
	}); err != nil {
		return stats, err
	}

	if readErr != nil {
		// Regions read before the failure are still written out.
		return stats, errors.Join(readErr, w.Flush())
	}

	if stats.Regions == 0 {
		e.logger.Info("0 regions processed")
	}

	return stats, w.Flush()
}
