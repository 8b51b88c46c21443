// Package portal is the client side of the marketplace: what the customer,
// pharmacy and driver portals do besides drawing screens.
//
// A Session holds the signed-in actor and bearer token of one portal. The
// Client talks to the REST API with that token and maps error responses back
// onto the errs taxonomy. The Shopper keeps the customer's cart, persisted in
// a SessionStore, and checks it out as one order per pharmacy. The Tracker
// polls an order until it reaches a terminal status.
//
//	session := portal.NewSession(kernel.RoleCustomer)
//	if err := session.SignIn(actor, token); err != nil {
//		return err
//	}
//	client := portal.NewClient(cfg.BackendURL, session, nil)
//	shopper, err := portal.NewShopper(ctx, session, client, store)
package portal
