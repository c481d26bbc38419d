package notify

import (
	"fmt"
	"io"

	"github.com/jalon-sh/jalon/internal/team"
)

// ConsoleChannel writes each delivery to an io.Writer instead of an external
// transport. It is used by the demo command and anywhere deliveries should be
// visible to the operator; the method tag is borrowed from the channel being
// simulated.
type ConsoleChannel struct {
	method Method
	out    io.Writer
}

// NewConsoleChannel creates a console channel tagged with the given method.
func NewConsoleChannel(method Method, out io.Writer) *ConsoleChannel {
	return &ConsoleChannel{method: method, out: out}
}

// Method returns the simulated delivery method.
func (c *ConsoleChannel) Method() Method {
	return c.method
}

// Deliver writes the delivery to the configured writer.
func (c *ConsoleChannel) Deliver(message string, to team.Member) error {
	_, err := fmt.Fprintf(c.out, "Notification sent to %s by %s: %s\n", to.Name, c.method, message)
	return err
}
