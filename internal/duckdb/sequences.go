package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-fasta/internal/region"
)

// SequenceResult is one extracted window ready to be stored.
type SequenceResult struct {
	Region   region.Region
	Caps     bool
	Sequence string
}

// StoredSequence is a row read back from the sequences table.
type StoredSequence struct {
	Source      string
	SourceSize  int64
	SourceMTime time.Time
	Region      region.Region
	Caps        bool
	Sequence    string
}

// WriteSequences batch-inserts results for source using the Appender API.
func (s *Store) WriteSequences(source FileFingerprint, results []SequenceResult) error {
	if len(results) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "sequences")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range results {
		if err := appender.AppendRow(
			source.Path, source.Size, source.ModTime,
			r.Region.Name, r.Region.Start, r.Region.End,
			r.Caps, r.Sequence,
		); err != nil {
			return fmt.Errorf("append sequence: %w", err)
		}
	}

	return appender.Flush()
}

// LookupRange returns stored sequences from source covering exactly start-end.
func (s *Store) LookupRange(source string, start, end int64) ([]StoredSequence, error) {
	rows, err := s.db.Query(`SELECT
		source, source_size, source_mtime, name, start_pos, end_pos, caps, sequence
		FROM sequences
		WHERE source=? AND start_pos=? AND end_pos=?
		ORDER BY name`,
		source, start, end)
	if err != nil {
		return nil, fmt.Errorf("query sequences: %w", err)
	}
	defer rows.Close()

	var out []StoredSequence
	for rows.Next() {
		var ss StoredSequence
		if err := rows.Scan(
			&ss.Source, &ss.SourceSize, &ss.SourceMTime,
			&ss.Region.Name, &ss.Region.Start, &ss.Region.End,
			&ss.Caps, &ss.Sequence,
		); err != nil {
			return nil, fmt.Errorf("scan sequence: %w", err)
		}
		out = append(out, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sequences: %w", err)
	}
	return out, nil
}

// Count returns the number of stored sequences.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sequences").Scan(&n); err != nil {
		return 0, fmt.Errorf("count sequences: %w", err)
	}
	return n, nil
}

// ClearSource removes all stored sequences extracted from source.
func (s *Store) ClearSource(source string) error {
	_, err := s.db.Exec("DELETE FROM sequences WHERE source=?", source)
	return err
}

// SequenceWriter adapts a Store to the extract.SequenceWriter interface,
// buffering rows and appending them on Flush.
type SequenceWriter struct {
	store   *Store
	source  FileFingerprint
	caps    bool
	pending []SequenceResult
}

// NewSequenceWriter creates a writer that stores sequences from source.
func (s *Store) NewSequenceWriter(source FileFingerprint, caps bool) *SequenceWriter {
	return &SequenceWriter{store: s, source: source, caps: caps}
}

// WriteHeader is a no-op.
func (w *SequenceWriter) WriteHeader() error {
	return nil
}

// Write buffers one sequence.
func (w *SequenceWriter) Write(r region.Region, seq string) error {
	w.pending = append(w.pending, SequenceResult{Region: r, Caps: w.caps, Sequence: seq})
	return nil
}

// Flush appends buffered sequences to the store.
func (w *SequenceWriter) Flush() error {
	if err := w.store.WriteSequences(w.source, w.pending); err != nil {
		return err
	}
	w.pending = w.pending[:0]
	return nil
}
