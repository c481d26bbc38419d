package notify

import (
	"sync"

	"github.com/jalon-sh/jalon/internal/errors"
	"github.com/jalon-sh/jalon/internal/event"
	"github.com/jalon-sh/jalon/internal/logging"
	"github.com/jalon-sh/jalon/internal/team"
)

// Notifier broadcasts messages to a recipient list through its active
// channel. The channel is swappable at any time; an in-flight broadcast
// keeps using the channel that was active when it started.
type Notifier struct {
	mu      sync.Mutex
	channel Channel
	journal *Journal
	bus     *event.Bus
	log     *logging.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithChannel sets the initial delivery channel.
func WithChannel(c Channel) Option {
	return func(n *Notifier) { n.channel = c }
}

// WithJournal records every delivery attempt to the given journal.
func WithJournal(j *Journal) Option {
	return func(n *Notifier) { n.journal = j }
}

// WithBus publishes a notification.sent event after each broadcast.
func WithBus(b *event.Bus) Option {
	return func(n *Notifier) { n.bus = b }
}

// WithLogger enables broadcast logging.
func WithLogger(l *logging.Logger) Option {
	return func(n *Notifier) { n.log = l }
}

// NewNotifier creates a Notifier. Without a WithChannel option the notifier
// starts without a channel and broadcasts are no-ops.
func NewNotifier(opts ...Option) *Notifier {
	n := &Notifier{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SetChannel replaces the active delivery channel.
func (n *Notifier) SetChannel(c Channel) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.channel = c
}

// Channel returns the active delivery channel, or nil if none is configured.
func (n *Notifier) Channel() Channel {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.channel
}

// Broadcast delivers the same message to every recipient in order,
// sequentially. Delivery is best-effort: a failure for one recipient does
// not prevent attempts to the rest. The returned slice holds one Result per
// recipient in broadcast order. With no channel configured, Broadcast
// delivers nothing and returns nil.
func (n *Notifier) Broadcast(message string, recipients []team.Member) []Result {
	n.mu.Lock()
	channel := n.channel
	n.mu.Unlock()

	if channel == nil || len(recipients) == 0 {
		return nil
	}

	method := channel.Method()
	results := make([]Result, 0, len(recipients))
	for _, recipient := range recipients {
		err := channel.Deliver(message, recipient)
		if err != nil {
			err = errors.NewDeliveryError(recipient.Name, method.String(), err)
			if n.log != nil {
				n.log.Warn("notification delivery failed",
					"method", method.String(),
					"recipient", recipient.Name,
				)
			}
		}
		results = append(results, Result{Recipient: recipient, Method: method, Err: err})
		n.record(method, message, recipient, err)
	}

	if n.bus != nil {
		n.bus.Publish(event.NewProjectEvent(event.TypeNotificationSent, "", method.String(), message))
	}
	return results
}

// record appends a journal entry for one delivery attempt.
// Journal failures are logged and otherwise ignored: the journal is an
// observability aid, not part of the delivery contract.
func (n *Notifier) record(method Method, message string, recipient team.Member, deliveryErr error) {
	if n.journal == nil {
		return
	}

	outcome := OutcomeSent
	if deliveryErr != nil {
		outcome = deliveryErr.Error()
	}
	err := n.journal.Append(Record{
		Method:    method.String(),
		Recipient: recipient.Name,
		Message:   message,
		Outcome:   outcome,
	})
	if err != nil && n.log != nil {
		n.log.Warn("delivery journal append failed", "error", err)
	}
}
