package project

import (
	"time"

	"github.com/jalon-sh/jalon/internal/errors"
)

// Milestone is a named date on the project timeline. Milestones are
// immutable records on an append-only list.
type Milestone struct {
	// Name identifies the milestone.
	Name string `json:"name" yaml:"name"`

	// Date is when the milestone is due or was reached.
	Date time.Time `json:"date" yaml:"date"`
}

// Risk is a recorded threat to the project. Risks are append-only.
type Risk struct {
	// Description states the risk.
	Description string `json:"description" yaml:"description"`

	// Probability is the estimated likelihood, between 0.0 and 1.0.
	Probability float64 `json:"probability" yaml:"probability"`

	// Impact is a free-text severity label such as "High".
	Impact string `json:"impact" yaml:"impact"`
}

// Validate checks that the risk's probability lies within [0, 1].
func (r Risk) Validate() error {
	if r.Description == "" {
		return errors.NewValidationError("description", "risk description is required")
	}
	if r.Probability < 0 || r.Probability > 1 {
		return errors.NewValidationError("probability", "risk probability must be between 0 and 1")
	}
	return nil
}

// Change is one entry in the project's change log. Changes are append-only
// and never renumbered.
type Change struct {
	// Description states what changed.
	Description string `json:"description"`

	// Version is the project version this change was recorded under.
	Version int `json:"version"`

	// Date is when the change was recorded.
	Date time.Time `json:"date"`
}
