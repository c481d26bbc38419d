// Package notify provides notification fan-out for project events.
//
// The package decouples what happened from how it is delivered. A [Channel]
// is a delivery strategy with a single capability, Deliver; three
// interchangeable variants exist (email, SMS, push) that differ only in the
// delivery-method tag they stamp on the record. A [Notifier] holds exactly
// one active channel at a time and broadcasts a message to a recipient list.
//
// # Broadcast semantics
//
// Broadcasts are sequential, in roster order, and best-effort: a failed
// delivery to one recipient never prevents attempts to the rest. Outcomes
// are collected per recipient and returned to the caller, which decides
// whether any failure escalates. A notifier with no channel configured is a
// no-op, allowing a project to operate before a delivery strategy is chosen.
//
// Replacing the channel mid-broadcast is not observable: a broadcast runs to
// completion against the channel that was active when it started.
//
// # Delivery journal
//
// A [Journal] optionally records every delivery attempt to an append-only
// JSONL file:
//
//	{journalDir}/deliveries.jsonl
//
// The journal supports reading the full history and a poll-based Watch for
// observing new deliveries as they are appended.
//
// # Basic Usage
//
//	n := notify.NewNotifier(notify.WithChannel(notify.NewEmailChannel(logger)))
//	results := n.Broadcast("New task added: build", roster)
//	for _, r := range notify.Failures(results) {
//	    log.Printf("delivery to %s failed: %v", r.Recipient.Name, r.Err)
//	}
package notify
