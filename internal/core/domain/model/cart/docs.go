// Package cart accumulates the medicines a shopper selects from search results
// and turns them into one order submission per pharmacy at checkout.
//
// A cart holds at most one line per medicine. Adding the same medicine again
// bumps its quantity, and a quantity below one removes the line. Prices and
// pharmacy names are captured when a line is created and never refreshed.
//
// Checkout submits the pharmacy groups one after another and stops at the
// first failure. Orders placed before the failure stay placed; nothing is
// rolled back or retried. The cart is cleared only when every group was
// placed, and the CheckoutResult tells placed, failed and skipped groups apart.
package cart
