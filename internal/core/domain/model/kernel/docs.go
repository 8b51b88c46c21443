// Package kernel holds the value objects shared by every aggregate of the
// medicine delivery domain.
//
//   - UUID: identifier of orders, pharmacies, medicines and users.
//   - Location: a geographic point with an optional street address. Distances
//     between locations are great-circle kilometres rounded to two decimals.
//   - Role and Actor: who is acting. An actor is a customer, a pharmacy or a
//     driver, identified by the UUID of that party.
//
// Every value object has an invalid zero value and must be built with its
// constructor.
package kernel
