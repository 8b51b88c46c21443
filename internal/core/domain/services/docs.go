// Package services holds domain logic that needs more than one aggregate or
// value object to decide.
//
// DeliveryEstimator turns a pharmacy location and a delivery address into the
// order.Estimate stored on a placed order and shown next to search results.
package services
