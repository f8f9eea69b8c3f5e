package event

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DeadLetterEntry is one event that exhausted its retries
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	PlayerID      string    `json:"player_id,omitempty"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends entries to a JSON-lines file, one per line
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
	now  func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating it if needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenDeadLetterFmt, path, err)
	}
	return &DeadLetterWriter{file: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

// Write records a failed event
func (w *DeadLetterWriter) Write(e Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     w.now(),
		PlayerID:      e.PlayerID(),
		Event:         e,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// Encode writes the entry and its newline in one call
	return w.enc.Encode(entry)
}

// Close closes the dead-letter file
func (w *DeadLetterWriter) Close() error {
	return w.file.Close()
}

// ReadDeadLetters decodes every entry in r. Lines that do not parse are
// skipped and counted rather than failing the whole read.
func ReadDeadLetters(r io.Reader) (entries []DeadLetterEntry, skipped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), DeadLetterMaxLine)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e DeadLetterEntry
		if json.Unmarshal(line, &e) != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped, sc.Err()
}

// ReadDeadLetterFile reads the entries in path. A missing file has none.
func ReadDeadLetterFile(path string) ([]DeadLetterEntry, int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf(ErrMsgOpenDeadLetterFmt, path, err)
	}
	defer f.Close()
	return ReadDeadLetters(f)
}
