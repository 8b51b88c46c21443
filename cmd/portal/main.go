// Command portal drives the marketplace from a terminal the way the customer,
// pharmacy and driver portals do: one invocation per action, with the session
// token and the customer's cart kept in Redis between invocations.
//
//	portal -role customer -id <uuid> login
//	portal -role customer -id <uuid> search -q paracetamol -lat 12.97 -lng 77.59
//	portal -role customer -id <uuid> add -q paracetamol -medicine <uuid>
//	portal -role customer -id <uuid> checkout -lat 12.97 -lng 77.59 -address "MG Road 1" -payment upi
//	portal -role pharmacy -id <uuid> status -order <uuid> -to accepted
//	portal -role customer -id <uuid> track -order <uuid>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"meddelivery/cmd"
	httpadapter "meddelivery/internal/adapters/in/http"
	"meddelivery/internal/core/application/usecases/queries"
	"meddelivery/internal/core/domain/model/cart"
	"meddelivery/internal/core/domain/model/driver"
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/core/domain/model/order"
	"meddelivery/internal/portal"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

const usage = `usage: portal -role <customer|pharmacy|driver> -id <uuid> <command> [flags]

commands:
  login      store a bearer token (issued locally from JWT_SECRET when -token is empty)
  logout     forget the token and cart
  search     search medicines
  add        add a search result to the cart
  set        set the quantity of a cart line
  cart       show the cart
  checkout   place one order per pharmacy in the cart
  orders     list my orders
  available  list orders waiting for a driver
  status     move an order to another status
  assign     assign a driver to an order
  track      poll an order until it is delivered or cancelled
  register-driver  register the driver's vehicle profile
  me         show my driver profile
  locate     report my current position as a driver
`

type app struct {
	cfg     cmd.Config
	actor   kernel.Actor
	store   *portal.RedisSessionStore
	session *portal.Session
	client  *portal.Client
	logger  *slog.Logger
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	global := flag.NewFlagSet("portal", flag.ExitOnError)
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	roleFlag := global.String("role", "customer", "portal role")
	idFlag := global.String("id", "", "actor id")
	_ = global.Parse(os.Args[1:])
	if global.NArg() == 0 {
		global.Usage()
		os.Exit(2)
	}

	actor, err := parseActor(*roleFlag, *idFlag)
	if err != nil {
		log.Fatalf("Invalid actor: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	session := portal.NewSession(actor.Role())
	a := &app{
		cfg:     cfg,
		actor:   actor,
		store:   portal.NewRedisSessionStore(redisClient, portal.DefaultSessionTTL),
		session: session,
		client:  portal.NewClient(cfg.BackendURL, session, nil),
		logger:  logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = a.run(ctx, global.Arg(0), global.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseActor(role, id string) (kernel.Actor, error) {
	r, err := kernel.ParseRole(role)
	if err != nil {
		return kernel.Actor{}, err
	}
	actorID, err := kernel.UUIDFromString(id)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(actorID, r)
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.store.Forget(ctx, a.actor)
	}

	if err := a.restoreSession(ctx); err != nil {
		return err
	}

	switch command {
	case "search":
		return a.search(ctx, args)
	case "add":
		return a.add(ctx, args)
	case "set":
		return a.set(ctx, args)
	case "cart":
		return a.showCart(ctx)
	case "checkout":
		return a.checkout(ctx, args)
	case "orders":
		return a.printResult(a.client.GetMyOrders(ctx))
	case "available":
		return a.printResult(a.client.GetAvailableOrders(ctx))
	case "status":
		return a.changeStatus(ctx, args)
	case "assign":
		return a.assign(ctx, args)
	case "track":
		return a.track(ctx, args)
	case "register-driver":
		return a.registerDriver(ctx, args)
	case "me":
		return a.printResult(a.client.GetMyDriver(ctx))
	case "locate":
		return a.locate(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "bearer token")
	_ = fs.Parse(args)

	if *token == "" {
		issuer, err := httpadapter.NewTokenIssuer(a.cfg.JWTSecret, a.cfg.JWTTTL)
		if err != nil {
			return fmt.Errorf("no -token given and cannot issue one: %w", err)
		}
		if *token, err = issuer.Issue(a.actor); err != nil {
			return err
		}
	}

	if err := a.session.SignIn(a.actor, *token); err != nil {
		return err
	}
	return a.store.SaveToken(ctx, a.actor, *token)
}

func (a *app) restoreSession(ctx context.Context) error {
	token, err := a.store.LoadToken(ctx, a.actor)
	if errors.Is(err, portal.ErrSessionNotFound) {
		return fmt.Errorf("%w: run login first", portal.ErrNotSignedIn)
	}
	if err != nil {
		return err
	}
	return a.session.SignIn(a.actor, token)
}

func (a *app) shopper(ctx context.Context) (*portal.Shopper, error) {
	return portal.NewShopper(ctx, a.session, a.client, a.store)
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	q := fs.String("q", "", "medicine name")
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	_ = fs.Parse(args)

	origin, err := optionalLocation(fs, *lat, *lng, "")
	if err != nil {
		return err
	}
	return a.printResult(a.client.SearchMedicines(ctx, *q, origin))
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	q := fs.String("q", "", "search text the medicine was found with")
	medicine := fs.String("medicine", "", "medicine id")
	_ = fs.Parse(args)

	medicineID, err := kernel.UUIDFromString(*medicine)
	if err != nil {
		return err
	}
	shopper, err := a.shopper(ctx)
	if err != nil {
		return err
	}
	results, err := shopper.Search(ctx, *q, nil)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Medicine.ID.IsEqual(medicineID) {
			if err = shopper.Add(ctx, r); err != nil {
				return err
			}
			return a.printCart(shopper)
		}
	}
	return fmt.Errorf("medicine %s is not among the results for %q", medicineID, *q)
}

func (a *app) set(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	medicine := fs.String("medicine", "", "medicine id")
	qty := fs.Int("qty", 1, "quantity, 0 removes the line")
	_ = fs.Parse(args)

	medicineID, err := kernel.UUIDFromString(*medicine)
	if err != nil {
		return err
	}
	shopper, err := a.shopper(ctx)
	if err != nil {
		return err
	}
	if err = shopper.SetQuantity(ctx, medicineID, *qty); err != nil {
		return err
	}
	return a.printCart(shopper)
}

func (a *app) showCart(ctx context.Context) error {
	shopper, err := a.shopper(ctx)
	if err != nil {
		return err
	}
	return a.printCart(shopper)
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "delivery latitude")
	lng := fs.Float64("lng", 0, "delivery longitude")
	address := fs.String("address", "", "delivery address")
	payment := fs.String("payment", "cash_on_delivery", "payment method")
	notes := fs.String("notes", "", "notes for the pharmacy")
	_ = fs.Parse(args)

	location, err := kernel.NewLocation(*lat, *lng, *address)
	if err != nil {
		return err
	}
	method, err := order.ParsePaymentMethod(*payment)
	if err != nil {
		return err
	}
	shopper, err := a.shopper(ctx)
	if err != nil {
		return err
	}

	result, err := shopper.Checkout(ctx, cart.CheckoutRequest{
		DeliveryAddress: location,
		PaymentMethod:   method,
		Notes:           *notes,
	})
	for _, p := range result.Placed {
		fmt.Printf("placed   %s at %s\n", p.OrderID, p.Group.PharmacyName)
	}
	for _, f := range result.Failed {
		fmt.Printf("failed   %s: %v\n", f.Group.PharmacyName, f.Err)
	}
	for _, s := range result.Skipped {
		fmt.Printf("skipped  %s\n", s.PharmacyName)
	}
	return err
}

func (a *app) changeStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	orderFlag := fs.String("order", "", "order id")
	to := fs.String("to", "", "target status")
	_ = fs.Parse(args)

	orderID, err := kernel.UUIDFromString(*orderFlag)
	if err != nil {
		return err
	}
	target, err := order.ParseStatus(*to)
	if err != nil {
		return err
	}
	return a.printResult(a.client.ChangeOrderStatus(ctx, orderID, target))
}

func (a *app) assign(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("assign", flag.ExitOnError)
	orderFlag := fs.String("order", "", "order id")
	driver := fs.String("driver", "", "driver id")
	_ = fs.Parse(args)

	orderID, err := kernel.UUIDFromString(*orderFlag)
	if err != nil {
		return err
	}
	driverID, err := kernel.UUIDFromString(*driver)
	if err != nil {
		return err
	}
	return a.printResult(a.client.AssignDriver(ctx, orderID, driverID))
}

func (a *app) registerDriver(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register-driver", flag.ExitOnError)
	var profile driver.Profile
	fs.StringVar(&profile.VehicleType, "vehicle", "", "vehicle type")
	fs.StringVar(&profile.VehicleNumber, "plate", "", "vehicle number")
	fs.StringVar(&profile.LicenseNumber, "license", "", "driving licence number")
	fs.StringVar(&profile.Address, "address", "", "home address")
	fs.StringVar(&profile.City, "city", "", "city")
	fs.StringVar(&profile.State, "state", "", "state")
	_ = fs.Parse(args)

	if err := profile.Validate(); err != nil {
		return err
	}
	return a.printResult(a.client.RegisterDriver(ctx, profile))
}

func (a *app) locate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("locate", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	address := fs.String("address", "", "landmark")
	_ = fs.Parse(args)

	location, err := kernel.NewLocation(*lat, *lng, *address)
	if err != nil {
		return err
	}
	return a.printResult(a.client.UpdateDriverLocation(ctx, location))
}

func (a *app) track(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("track", flag.ExitOnError)
	orderFlag := fs.String("order", "", "order id")
	interval := fs.Duration("every", a.cfg.TrackInterval, "poll interval")
	_ = fs.Parse(args)

	orderID, err := kernel.UUIDFromString(*orderFlag)
	if err != nil {
		return err
	}

	tracker, err := portal.NewTracker(a.client, orderID, *interval, func(o queries.OrderResponse) {
		fmt.Printf("%s  %s  eta %d min\n", o.UpdatedAt.Format("15:04:05"), o.Status, o.EstimatedMinutes)
	}, a.logger)
	if err != nil {
		return err
	}

	tracker.Start(ctx)
	defer tracker.Stop()

	select {
	case <-tracker.Done():
	case <-ctx.Done():
	}
	return nil
}

func (a *app) printCart(shopper *portal.Shopper) error {
	for _, g := range shopper.Groups() {
		fmt.Println(g.PharmacyName)
		for _, l := range g.Lines {
			fmt.Printf("  %s  %s x%d  %s\n", l.MedicineID(), l.MedicineName(), l.Quantity(), l.Subtotal().StringFixed(2))
		}
	}
	fmt.Println("total", shopper.Total().StringFixed(2))
	return nil
}

func (a *app) printResult(v any, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// optionalLocation returns nil unless -lat or -lng was given.
func optionalLocation(fs *flag.FlagSet, lat, lng float64, address string) (*kernel.Location, error) {
	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "lat" || f.Name == "lng" {
			given = true
		}
	})
	if !given {
		return nil, nil
	}
	location, err := kernel.NewLocation(lat, lng, address)
	if err != nil {
		return nil, err
	}
	return &location, nil
}
