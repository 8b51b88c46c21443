package order

import (
	"fmt"

	"meddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It is stored and transported by
// its string name.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota
	Pending
	Accepted
	Preparing
	PickedUp
	InTransit
	Delivered
	Cancelled
)

// authority says which parties may perform an edge.
type authority uint8

const (
	byPharmacy authority = 1 << iota
	byDriver
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Preparing: "preparing",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Preparing: "preparing",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions returns the lifecycle graph: source -> target -> who may move it.
func getTransitions() map[Status]map[Status]authority {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
	return map[Status]map[Status]authority{
		Pending: {
			Accepted:  byPharmacy,
			Cancelled: byPharmacy,
		},
		Accepted: {
			Preparing: byPharmacy,
			PickedUp:  byDriver,
		},
		Preparing: {
			PickedUp: byDriver,
		},
		PickedUp: {
			InTransit: byDriver,
		},
		InTransit: {
			Delivered: byDriver | byPharmacy,
		},
	}
}

// ParseStatus maps a wire name such as "picked_up" to its Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	_, ok := getTransitions()[s][target]
	return ok
}

// TransitionTo returns target if the edge s -> target exists.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewTransitionIsInvalidError(s.String(), target.String())
	}
	return target, nil
}

// Next lists the statuses reachable from s in one step, in lifecycle order.
func (s Status) Next() []Status {
	next := make([]Status, 0, 2)
	for candidate := Pending; candidate <= Cancelled; candidate++ {
		if s.CanTransitionTo(candidate) {
			next = append(next, candidate)
		}
	}
	return next
}

// ValidateAssignDriver checks that a driver may be (re)assigned in status s.
func (s Status) ValidateAssignDriver() error {
	if s != Accepted && s != Preparing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign a driver", s),
		)
	}
	return nil
}

func (s Status) authority(target Status) authority {
	return getTransitions()[s][target]
}
