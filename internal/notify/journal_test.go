package notify

import (
	"sync"
	"testing"
	"time"
)

func TestJournal_AppendAndReadAll(t *testing.T) {
	j := NewJournal(t.TempDir())

	recs := []Record{
		{Method: "email", Recipient: "Maya", Message: "m1", Outcome: OutcomeSent},
		{Method: "email", Recipient: "Chris", Message: "m2", Outcome: OutcomeSent},
	}
	for _, rec := range recs {
		if err := j.Append(rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := j.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ReadAll returned %d records, want 2", len(got))
	}
	if got[0].Recipient != "Maya" || got[1].Recipient != "Chris" {
		t.Errorf("records out of append order: %v", got)
	}
	if got[0].ID == "" {
		t.Error("Append should populate an empty ID")
	}
	if got[0].Timestamp.IsZero() {
		t.Error("Append should populate a zero Timestamp")
	}
	if got[0].ID == got[1].ID {
		t.Error("record IDs should be unique")
	}
}

func TestJournal_ReadAllMissingFile(t *testing.T) {
	j := NewJournal(t.TempDir())

	got, err := j.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if got != nil {
		t.Errorf("ReadAll on missing file = %v, want nil", got)
	}
}

func TestJournal_AppendValidation(t *testing.T) {
	j := NewJournal(t.TempDir())

	if err := j.Append(Record{Method: "email"}); err == nil {
		t.Error("Append without Recipient should fail")
	}
	if err := j.Append(Record{Recipient: "Maya"}); err == nil {
		t.Error("Append without Method should fail")
	}
}

func TestJournal_Watch(t *testing.T) {
	j := NewJournal(t.TempDir())
	j.SetPollInterval(10 * time.Millisecond)

	// Records appended before Watch must not be delivered.
	if err := j.Append(Record{Method: "email", Recipient: "early", Outcome: OutcomeSent}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	var mu sync.Mutex
	var seen []string
	cancel := j.Watch(func(rec Record) {
		mu.Lock()
		seen = append(seen, rec.Recipient)
		mu.Unlock()
	})
	defer cancel()

	if err := j.Append(Record{Method: "email", Recipient: "Maya", Outcome: OutcomeSent}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := j.Append(Record{Method: "email", Recipient: "Chris", Outcome: OutcomeSent}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := len(seen)
		mu.Unlock()
		if n >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("watcher saw %d records, want 2", n)
		case <-time.After(10 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if seen[0] != "Maya" || seen[1] != "Chris" {
		t.Errorf("watcher order = %v, want [Maya Chris]", seen)
	}
}

func TestJournal_WatchCancelStopsDelivery(t *testing.T) {
	j := NewJournal(t.TempDir())
	j.SetPollInterval(10 * time.Millisecond)

	var mu sync.Mutex
	count := 0
	cancel := j.Watch(func(Record) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	cancel()

	if err := j.Append(Record{Method: "email", Recipient: "Maya", Outcome: OutcomeSent}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Errorf("canceled watcher delivered %d records, want 0", count)
	}
}
