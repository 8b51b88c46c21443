// Package pharmacy models a pharmacy and its medicine catalogue.
//
// A pharmacy is identified by the same id its staff act under, so the owning
// pharmacy of an order is simply the actor with the pharmacy role and that id.
// Placing an order reserves stock for every item at once: either all items are
// available and every stock is decremented, or nothing changes.
package pharmacy
