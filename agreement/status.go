/*
status.go - Agreement lifecycle states

PURPOSE:
  An agreement is offered, then either accepted (binding) or withdrawn.
  Both outcomes are terminal. Transitions happen in the grants backend;
  this service only branches display behaviour on the current value:
  until the agreement is binding, applicant identity and agreement
  dates are masked.

SEE ALSO:
  - render/model.go: Redaction driven by Status
  - api/handlers.go: Controller selection driven by Status
*/
package agreement

// Status is the lifecycle state of an agreement.
type Status string

const (
	// StatusOffered means the offer is awaiting a decision. Sensitive
	// fields are masked in any rendering.
	StatusOffered Status = "offered"

	// StatusAccepted means the agreement is binding. Terminal.
	StatusAccepted Status = "accepted"

	// StatusWithdrawn means the offer was withdrawn before acceptance.
	// Terminal, never binding.
	StatusWithdrawn Status = "withdrawn"
)

// Known reports whether the status is one of the recognised states.
func (s Status) Known() bool {
	switch s {
	case StatusOffered, StatusAccepted, StatusWithdrawn:
		return true
	}
	return false
}

// Binding reports whether real applicant identity and agreement dates
// may be shown.
func (s Status) Binding() bool { return s == StatusAccepted }

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool { return s == StatusAccepted || s == StatusWithdrawn }
