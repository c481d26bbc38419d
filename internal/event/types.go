// Package event provides a synchronous pub-sub bus for project lifecycle
// events. It decouples observers (the TUI, logging, delivery journals) from
// the Project orchestrator: mutations publish typed events and any number of
// subscribers react without the Project knowing about them.
package event

import "time"

// Event types published by the project orchestrator.
const (
	// TypeMemberAdded indicates a member joined the team.
	TypeMemberAdded = "member.added"
	// TypeTaskAdded indicates a task was registered with the project.
	TypeTaskAdded = "task.added"
	// TypeBudgetSet indicates the project budget changed.
	TypeBudgetSet = "budget.set"
	// TypeRiskAdded indicates a risk was recorded.
	TypeRiskAdded = "risk.added"
	// TypeMilestoneAdded indicates a milestone was recorded.
	TypeMilestoneAdded = "milestone.added"
	// TypeChangeRecorded indicates a change entry was appended.
	TypeChangeRecorded = "change.recorded"
	// TypeCriticalPathComputed indicates the critical path was recomputed.
	TypeCriticalPathComputed = "criticalpath.computed"
	// TypeNotificationSent indicates a broadcast completed.
	TypeNotificationSent = "notification.sent"
)

// Event is the interface all published events implement.
type Event interface {
	// EventType returns the type identifier used for subscription routing.
	EventType() string

	// OccurredAt returns when the event was created.
	OccurredAt() time.Time
}

// ProjectEvent is the concrete event published for project mutations.
type ProjectEvent struct {
	// Type is one of the Type* constants.
	Type string

	// Project is the name of the project the event belongs to.
	Project string

	// Subject names the entity the event is about (member name, task name,
	// milestone name, change description, ...).
	Subject string

	// Detail carries optional free-form context, such as the broadcast
	// message or the computed path summary.
	Detail string

	// Time is when the event was created.
	Time time.Time
}

// EventType returns the event's type identifier.
func (e ProjectEvent) EventType() string {
	return e.Type
}

// OccurredAt returns when the event was created.
func (e ProjectEvent) OccurredAt() time.Time {
	return e.Time
}

// NewProjectEvent creates a ProjectEvent stamped with the current time.
func NewProjectEvent(eventType, project, subject, detail string) ProjectEvent {
	return ProjectEvent{
		Type:    eventType,
		Project: project,
		Subject: subject,
		Detail:  detail,
		Time:    time.Now(),
	}
}
