package notify

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// journalFile is the append-only JSONL file within the journal directory.
	journalFile = "deliveries.jsonl"

	// defaultPollInterval is the default interval for the Watch poller.
	defaultPollInterval = 500 * time.Millisecond
)

// Journal provides file-based storage of delivery records. Records are
// persisted as JSONL (one JSON object per line) in an append-only log.
// It is safe for concurrent use within a single process.
type Journal struct {
	dir          string
	mu           sync.Mutex
	pollInterval time.Duration
}

// NewJournal creates a Journal rooted at the given directory.
// The directory is created lazily on first write.
func NewJournal(dir string) *Journal {
	return &Journal{dir: dir, pollInterval: defaultPollInterval}
}

// SetPollInterval configures the interval between Watch polls.
// Must be called before Watch. Zero or negative values are ignored.
func (j *Journal) SetPollInterval(d time.Duration) {
	if d > 0 {
		j.pollInterval = d
	}
}

// Append persists one delivery record. If rec.ID is empty a unique ID is
// generated, and if rec.Timestamp is zero the current time is used. Writes
// are serialized via a mutex and use O_APPEND.
func (j *Journal) Append(rec Record) error {
	if rec.Recipient == "" {
		return fmt.Errorf("journal: record Recipient field is required")
	}
	if rec.Method == "" {
		return fmt.Errorf("journal: record Method field is required")
	}

	if rec.ID == "" {
		rec.ID = generateID()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("journal: create directory: %w", err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("journal: marshal record: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("journal: open file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("journal: append record: %w", err)
	}
	return f.Close()
}

// ReadAll returns all delivery records in append order.
// A missing journal file yields nil, not an error.
func (j *Journal) ReadAll() ([]Record, error) {
	f, err := os.Open(j.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("journal: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			// Skip malformed lines rather than failing entirely
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("journal: scan file: %w", err)
	}
	return records, nil
}

// Watch polls for new records and invokes handler for each one appended
// after the call. It returns a cancel function that stops the watcher.
// The watcher runs in a separate goroutine; records are delivered in
// append order.
func (j *Journal) Watch(handler func(Record)) (cancel func()) {
	var stopped atomic.Bool
	var wg sync.WaitGroup

	// Take the initial snapshot synchronously so that any Append after
	// Watch returns is guaranteed to be seen by the poller.
	seen := 0
	if records, err := j.ReadAll(); err == nil {
		seen = len(records)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for !stopped.Load() {
			time.Sleep(j.pollInterval)
			if stopped.Load() {
				return
			}

			records, err := j.ReadAll()
			if err != nil {
				continue
			}
			if len(records) > seen {
				for _, rec := range records[seen:] {
					handler(rec)
				}
				seen = len(records)
			}
		}
	}()

	return func() {
		stopped.Store(true)
		wg.Wait()
	}
}

// path returns the journal file path.
func (j *Journal) path() string {
	return filepath.Join(j.dir, journalFile)
}

// idCounter provides per-process uniqueness for record IDs.
var idCounter atomic.Uint64

// generateID produces a unique record ID using timestamp, PID, and atomic counter.
func generateID() string {
	return fmt.Sprintf("ntf-%d-%d-%d", time.Now().UnixNano(), os.Getpid(), idCounter.Add(1))
}
