// Package telemetry records per-wave game events as CSV and summarizes frame
// timings.
package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rotisserie/eris"
)

// WaveRecord is one row of the wave log.
type WaveRecord struct {
	Time    string  `csv:"time"`
	Session string  `csv:"session"`
	Event   string  `csv:"event"`
	Level   int     `csv:"level"`
	Score   int     `csv:"score"`
	Health  int     `csv:"health"`
	Spawned int     `csv:"spawned"`
	Elapsed float64 `csv:"elapsed_s"`
}

// WaveLog appends WaveRecords to a CSV stream. A nil *WaveLog discards
// everything, so callers do not need to check whether telemetry is enabled.
type WaveLog struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// OpenWaveLog creates (or truncates) the CSV file at path.
// Returns nil if path is empty.
func OpenWaveLog(path string) (*WaveLog, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, eris.Wrap(err, "creating telemetry directory")
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, eris.Wrapf(err, "creating %s", path)
	}
	return &WaveLog{w: f, closer: f}, nil
}

// NewWaveLog writes to w. The caller owns w.
func NewWaveLog(w io.Writer) *WaveLog {
	return &WaveLog{w: w}
}

// Write appends one record, stamping Time if it is empty.
func (l *WaveLog) Write(record WaveRecord) error {
	if l == nil {
		return nil
	}
	if record.Time == "" {
		record.Time = time.Now().UTC().Format(time.RFC3339)
	}

	records := []WaveRecord{record}
	if !l.headerWritten {
		if err := gocsv.Marshal(records, l.w); err != nil {
			return eris.Wrap(err, "writing wave record")
		}
		l.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, l.w); err != nil {
		return eris.Wrap(err, "writing wave record")
	}
	return nil
}

// Close closes the underlying file, if the log opened one.
func (l *WaveLog) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return eris.Wrap(l.closer.Close(), "closing wave log")
}

// ReadWaveLog parses a CSV produced by WaveLog.
func ReadWaveLog(r io.Reader) ([]WaveRecord, error) {
	var records []WaveRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, eris.Wrap(err, "reading wave log")
	}
	return records, nil
}
