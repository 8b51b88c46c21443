// Package order implements the Order aggregate of the medicine delivery
// marketplace and the state machine that governs its lifecycle.
//
//	pending --(pharmacy)--> accepted --(pharmacy)--> preparing
//	accepted | preparing --(assigned driver)--> picked_up
//	picked_up --(assigned driver)--> in_transit
//	in_transit --(assigned driver | owning pharmacy)--> delivered   [terminal]
//	pending --(owning pharmacy)--> cancelled                         [terminal]
//
// Any edge not drawn above is rejected with errs.ErrTransitionIsInvalid,
// including skips, regressions, self loops and anything leaving a terminal
// state. The graph is checked before authority, so a transition out of a
// terminal state is reported as invalid no matter who asks. An actor who may
// not perform a legal edge gets errs.ErrActionIsForbidden.
//
// An order belongs to exactly one pharmacy. Its total is the sum of its item
// subtotals at placement and is never recomputed afterwards. Cash on delivery
// is refused when the pharmacy is CashOnDeliveryMaxDistanceKm or further away.
//
// Every state change records a domain event (OrderPlaced, OrderStatusChanged,
// DriverAssigned) that the persistence layer writes to the outbox in the same
// transaction.
package order
