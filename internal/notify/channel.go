package notify

import (
	"github.com/jalon-sh/jalon/internal/errors"
	"github.com/jalon-sh/jalon/internal/logging"
	"github.com/jalon-sh/jalon/internal/team"
)

// Channel is a delivery strategy. Implementations carry no delivery state
// beyond their method tag; the concrete transport is out of scope and the
// reference behavior is to log the attempt and succeed.
type Channel interface {
	// Method returns the delivery-method tag for this channel.
	Method() Method

	// Deliver sends one message to one recipient. It returns an error if
	// the destination is unreachable.
	Deliver(message string, to team.Member) error
}

// NewChannel constructs the channel variant for the given method.
func NewChannel(method Method, log *logging.Logger) (Channel, error) {
	switch method {
	case MethodEmail:
		return NewEmailChannel(log), nil
	case MethodSMS:
		return NewSMSChannel(log), nil
	case MethodPush:
		return NewPushChannel(log), nil
	default:
		return nil, errors.NewValidationError("method", "unknown delivery method: "+method.String())
	}
}

// EmailChannel delivers notifications by email.
type EmailChannel struct {
	log *logging.Logger
}

// NewEmailChannel creates an email delivery channel.
// A nil logger disables delivery logging.
func NewEmailChannel(log *logging.Logger) *EmailChannel {
	return &EmailChannel{log: log}
}

// Method returns MethodEmail.
func (c *EmailChannel) Method() Method {
	return MethodEmail
}

// Deliver records the attempt and succeeds.
func (c *EmailChannel) Deliver(message string, to team.Member) error {
	logDelivery(c.log, MethodEmail, message, to)
	return nil
}

// SMSChannel delivers notifications by SMS.
type SMSChannel struct {
	log *logging.Logger
}

// NewSMSChannel creates an SMS delivery channel.
// A nil logger disables delivery logging.
func NewSMSChannel(log *logging.Logger) *SMSChannel {
	return &SMSChannel{log: log}
}

// Method returns MethodSMS.
func (c *SMSChannel) Method() Method {
	return MethodSMS
}

// Deliver records the attempt and succeeds.
func (c *SMSChannel) Deliver(message string, to team.Member) error {
	logDelivery(c.log, MethodSMS, message, to)
	return nil
}

// PushChannel delivers notifications by push message.
type PushChannel struct {
	log *logging.Logger
}

// NewPushChannel creates a push delivery channel.
// A nil logger disables delivery logging.
func NewPushChannel(log *logging.Logger) *PushChannel {
	return &PushChannel{log: log}
}

// Method returns MethodPush.
func (c *PushChannel) Method() Method {
	return MethodPush
}

// Deliver records the attempt and succeeds.
func (c *PushChannel) Deliver(message string, to team.Member) error {
	logDelivery(c.log, MethodPush, message, to)
	return nil
}

func logDelivery(log *logging.Logger, method Method, message string, to team.Member) {
	if log == nil {
		return
	}
	log.Info("notification delivered",
		"method", method.String(),
		"recipient", to.Name,
		"message", message,
	)
}
