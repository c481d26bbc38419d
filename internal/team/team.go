// Package team models project staffing: individual members and the ordered
// roster they belong to.
//
// A [Member] is immutable once created: identity is the member's name, and the
// role is a free-text tag rather than a strict enum. A [Team] preserves
// insertion order and does not deduplicate members, because broadcast order
// for notifications follows roster order.
package team

// Member is a single person on the project roster.
type Member struct {
	// Name identifies the member.
	Name string `json:"name" yaml:"name"`

	// Role is a free-text tag such as "Project lead" or "Developer".
	Role string `json:"role" yaml:"role"`
}

// String returns the member formatted as "Name (Role)".
func (m Member) String() string {
	if m.Role == "" {
		return m.Name
	}
	return m.Name + " (" + m.Role + ")"
}

// Team is an ordered collection of members. Insertion order is significant:
// notification broadcasts visit members in roster order. Duplicate members
// are not deduplicated.
//
// Team is not safe for concurrent use; the owning Project serializes access.
type Team struct {
	members []Member
}

// Add appends a member to the roster.
func (t *Team) Add(m Member) {
	t.members = append(t.members, m)
}

// Members returns a snapshot of the roster in insertion order.
// The returned slice is a copy; mutating it does not affect the team.
func (t *Team) Members() []Member {
	out := make([]Member, len(t.members))
	copy(out, t.members)
	return out
}

// Size returns the number of members on the roster.
func (t *Team) Size() int {
	return len(t.members)
}

// Contains reports whether a member with the given name is on the roster.
func (t *Team) Contains(name string) bool {
	for _, m := range t.members {
		if m.Name == name {
			return true
		}
	}
	return false
}
