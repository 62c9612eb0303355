package order

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It is a closed enumeration: callers supplying status names go through
// StatusFromString, so an unrecognized name is a typed error rather than a
// value stored verbatim.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//	    │            │
//	    └────────────┴──> NoStock
//
// Delivered is terminal for the waiter advancement path. NoStock is reached
// only through the kitchen and advancing it is an identity transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a seeded order, waiting for the
	// kitchen to pick it up.
	Pending

	// Preparing indicates the kitchen has started the order.
	// The cook-facing name "started" maps to this status.
	Preparing

	// Ready indicates the order is plated and waiting for the waiter.
	Ready

	// Delivered indicates the order reached the table.
	// This is a final state for the waiter advancement path.
	Delivered

	// NoStock indicates the kitchen cannot fulfill the order because one or
	// more of its items ran out.
	NoStock
)

// statusStartedAlias is the cook-facing name for Preparing kept for
// compatibility with the original kitchen vocabulary.
const statusStartedAlias = "started"

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		NoStock:   "no stock",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		NoStock:   "no stock",
	}
}

// StatusFromString resolves a status name to its Status value.
// The cook alias "started" resolves to Preparing. An unrecognized name is
// rejected with a typed error instead of being stored verbatim, keeping the
// enumeration closed.
func StatusFromString(name string) (Status, error) {
	if name == statusStartedAlias {
		return Preparing, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Preparing, Ready, Delivered, NoStock.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Progress returns the fulfillment percentage shown on progress bars.
//
//	Pending 0, Preparing 33, Ready 66, Delivered 100.
//
// Any other status, NoStock included, reports 0.
func (s Status) Progress() int {
	switch s {
	case Pending:
		return 0
	case Preparing:
		return 33
	case Ready:
		return 66
	case Delivered:
		return 100
	default:
		return 0
	}
}

// ProgressColor returns the progress bar color scheme for the status.
// Statuses outside the happy path report gray.
func (s Status) ProgressColor() string {
	switch s {
	case Pending:
		return "red"
	case Preparing:
		return "yellow"
	case Ready:
		return "green"
	case Delivered:
		return "blue"
	default:
		return "gray"
	}
}

// Next returns the status that follows s in the fulfillment workflow.
// Statuses outside the Pending -> Preparing -> Ready chain map to
// themselves, making Next total without being a transition check; use
// Advance for the guarded waiter transition.
func (s Status) Next() Status {
	switch s {
	case Pending:
		return Preparing
	case Preparing:
		return Ready
	case Ready:
		return Delivered
	default:
		return s
	}
}

// NextActionLabel returns the waiter-facing label for the button that
// advances the order.
func (s Status) NextActionLabel() string {
	switch s {
	case Pending:
		return "Start Preparing"
	case Preparing:
		return "Mark as Ready"
	case Ready:
		return "Deliver Order"
	case Delivered:
		return "Order Completed"
	default:
		return "Update Status"
	}
}

// Advance performs the waiter transition to the next workflow status.
//
// Valid transitions:
//   - Pending -> Preparing
//   - Preparing -> Ready
//   - Ready -> Delivered
//   - NoStock -> NoStock (identity)
//
// Invalid transitions:
//   - Delivered (terminal for the waiter path)
//   - Unknown (invalid initial state)
//
// Returns:
//   - (next status, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Advance() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is a terminal status and cannot be advanced", s.String()),
		)
	}
	return s.Next(), nil
}
