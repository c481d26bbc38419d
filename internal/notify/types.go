package notify

import (
	"time"

	"github.com/jalon-sh/jalon/internal/errors"
	"github.com/jalon-sh/jalon/internal/team"
)

// Method identifies a delivery mechanism.
type Method string

const (
	// MethodEmail delivers notifications by email.
	MethodEmail Method = "email"

	// MethodSMS delivers notifications by SMS.
	MethodSMS Method = "sms"

	// MethodPush delivers notifications by push message.
	MethodPush Method = "push"
)

// String returns the string representation of the method.
func (m Method) String() string {
	return string(m)
}

// IsValid returns true if this is a recognized delivery method.
func (m Method) IsValid() bool {
	switch m {
	case MethodEmail, MethodSMS, MethodPush:
		return true
	default:
		return false
	}
}

// ParseMethod converts a config string into a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", errors.NewValidationError("method", "unknown delivery method: "+s)
	}
	return m, nil
}

// Result is the outcome of one delivery attempt within a broadcast.
type Result struct {
	// Recipient is the member the delivery was attempted for.
	Recipient team.Member

	// Method is the delivery mechanism used.
	Method Method

	// Err is nil on success, or a *errors.DeliveryError on failure.
	Err error
}

// Failed returns true if the delivery attempt failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Failures filters a broadcast's results down to the failed deliveries.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Record is a journal entry for one delivery attempt.
type Record struct {
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// OutcomeSent is the journal outcome for a successful delivery.
const OutcomeSent = "sent"
