// Package driver models a delivery driver's profile.
//
// Like a pharmacy, a driver is identified by the same id the driver acts
// under, so the assigned driver of an order is the actor with the driver role
// and that id. A driver reports a current position once on the road; until
// then the location is unknown.
package driver
