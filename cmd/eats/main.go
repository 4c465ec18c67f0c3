// Command eats is the terminal ordering client for the cafeteria: browse the
// menu, manage the cart, place and track orders, and (for admins) manage the
// menu and order statuses.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/benittaafriyie-svg/acity-eats/internal/cart"
	"github.com/benittaafriyie-svg/acity-eats/internal/client"
	"github.com/benittaafriyie-svg/acity-eats/internal/config"
	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
	"github.com/benittaafriyie-svg/acity-eats/internal/order"
	"github.com/benittaafriyie-svg/acity-eats/internal/session"
)

const usage = `usage: eats <command> [arguments]

commands:
  register   create an account
  login      log in and store the session
  logout     forget the stored session
  menu       browse the menu (-category All|Meals|Snacks|Drinks|...)
  cart       show the cart, or: cart add <id> [qty] | remove <id> | update <id> <delta> | clear
  checkout   place the order (-type Inhouse|Takeout)
  orders     list your orders
  admin      admin tools: orders | status <id> <status> | stats |
             menu-add [flags] | menu-edit <id> [flags] | menu-del <id>
`

type app struct {
	cfg     config.Client
	session *session.Session
	api     *client.Client
	engine  *cart.Engine
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadClient()
	sess := session.New(cfg.StateDir)
	api := client.New(cfg.APIURL, &http.Client{}, sess).WithTimeout(cfg.Timeout)

	engine, err := cart.NewEngine(cart.NewFileStore(cfg.StateDir))
	if err != nil {
		fail(err)
	}

	a := &app{cfg: cfg, session: sess, api: api, engine: engine}

	ctx := context.Background()
	switch cmd := os.Args[1]; cmd {
	case "register":
		err = a.register(ctx, os.Args[2:])
	case "login":
		err = a.login(ctx, os.Args[2:])
	case "logout":
		err = a.session.Logout()
	case "menu":
		err = a.menu(ctx, os.Args[2:])
	case "cart":
		err = a.cart(os.Args[2:])
	case "checkout":
		err = a.checkout(ctx, os.Args[2:])
	case "orders":
		err = a.orders(ctx)
	case "admin":
		err = a.admin(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	switch {
	case errors.Is(err, cart.ErrNotAuthenticated):
		fmt.Fprintln(os.Stderr, "please log in first: eats login")
	case errors.Is(err, client.ErrRequestTimeout):
		fmt.Fprintln(os.Stderr, "request timeout, please check your connection and try again")
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	room := fs.String("room", "", "room number (optional)")
	fs.Parse(args)

	err := client.NewAuthClient(a.api).Register(ctx, client.RegisterRequest{
		Name:       *name,
		Email:      *email,
		Password:   *password,
		RoomNumber: *room,
	})
	if err != nil {
		return err
	}
	fmt.Println("registration successful, you can now log in")
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	resp, err := client.NewAuthClient(a.api).Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := a.session.SaveLogin(resp.Token, resp.User); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", resp.User.Name)
	return nil
}

func (a *app) menu(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ExitOnError)
	category := fs.String("category", "All", "category filter")
	fs.Parse(args)

	items, err := client.NewMenuClient(a.api).GetAll(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s Special\n\n", menu.MealPeriod(time.Now().Hour()))

	for _, it := range menu.Filter(items, *category) {
		line := fmt.Sprintf("%4d  %-30s GHS %8.2f  %s", it.ID, it.Name, it.Price, it.Category)
		if pct := it.DiscountPercent(); pct > 0 {
			line += fmt.Sprintf("  (%d%% off)", pct)
		}
		if !it.Available {
			line += "  [sold out]"
		}
		fmt.Println(line)
	}
	return nil
}

func (a *app) cart(args []string) error {
	if len(args) == 0 {
		return a.showCart()
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return errors.New("usage: eats cart add <id> [qty]")
		}
		return a.cartAdd(args[1:])
	case "remove":
		if len(args) != 2 {
			return errors.New("usage: eats cart remove <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[1])
		}
		if err := a.engine.Remove(id); err != nil {
			return err
		}
		return a.showCart()
	case "update":
		if len(args) != 3 {
			return errors.New("usage: eats cart update <id> <delta>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[1])
		}
		delta, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid delta %q", args[2])
		}
		if err := a.engine.UpdateQuantity(id, delta); err != nil {
			return err
		}
		return a.showCart()
	case "clear":
		if err := a.engine.Clear(); err != nil {
			return err
		}
		fmt.Println("cart cleared")
		return nil
	default:
		return fmt.Errorf("unknown cart command %q", args[0])
	}
}

func (a *app) cartAdd(args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}
	qty := 1
	if len(args) > 1 {
		qty, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Timeout)
	defer cancel()

	item, err := client.NewMenuClient(a.api).GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := a.engine.Add(*item, qty); err != nil {
		return err
	}
	fmt.Printf("added %d x %s\n", qty, item.Name)
	return a.showCart()
}

func (a *app) showCart() error {
	lines := a.engine.Lines()
	if len(lines) == 0 {
		fmt.Println("your cart is empty, add items to get started")
		return nil
	}

	for _, ln := range lines {
		fmt.Printf("%4d  %-30s GHS %8.2f  x %d\n", ln.ID, ln.Name, ln.Price, ln.Quantity)
	}
	t := a.engine.Totals()
	fmt.Printf("\nsubtotal GHS %.2f, discount GHS %.2f, total GHS %.2f (%d items)\n",
		t.Subtotal, t.Discount, t.Total, a.engine.ItemCount())
	return nil
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	orderType := fs.String("type", order.TypeInhouse, "Inhouse or Takeout")
	fs.Parse(args)

	co := cart.NewCheckout(a.engine, client.NewOrdersClient(a.api), a.session)
	orderID, err := co.Submit(ctx, *orderType)
	if err != nil {
		return err
	}
	fmt.Printf("order placed successfully, order id %s\n", orderID)
	return nil
}

func (a *app) orders(ctx context.Context) error {
	orders, err := client.NewOrdersClient(a.api).ListMine(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("no orders yet")
		return nil
	}
	printOrders(orders)
	return nil
}

func (a *app) admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: eats admin orders | status <id> <status> | stats | menu-add | menu-edit <id> | menu-del <id>")
	}

	admin := client.NewAdminClient(a.api)
	switch args[0] {
	case "orders":
		orders, err := admin.ListOrders(ctx)
		if err != nil {
			return err
		}
		printOrders(orders)
		return nil
	case "status":
		if len(args) != 3 {
			return errors.New("usage: eats admin status <id> <status>")
		}
		if err := admin.UpdateOrderStatus(ctx, args[1], order.Status(args[2])); err != nil {
			return err
		}
		fmt.Println("order status updated")
		return nil
	case "stats":
		s, err := admin.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("orders: %d (pending %d, inhouse %d, takeout %d), revenue GHS %.2f\n",
			s.TotalOrders, s.PendingOrders, s.InhouseOrders, s.TakeoutOrders, s.TotalRevenue)
		return nil
	case "menu-add":
		return a.adminMenuAdd(ctx, admin, args[1:])
	case "menu-edit":
		return a.adminMenuEdit(ctx, admin, args[1:])
	case "menu-del":
		if len(args) != 2 {
			return errors.New("usage: eats admin menu-del <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[1])
		}
		if err := admin.DeleteMenuItem(ctx, id); err != nil {
			return err
		}
		fmt.Println("menu item deleted")
		return nil
	default:
		return fmt.Errorf("unknown admin command %q", args[0])
	}
}

func (a *app) adminMenuAdd(ctx context.Context, admin *client.AdminClient, args []string) error {
	fs := flag.NewFlagSet("menu-add", flag.ExitOnError)
	name := fs.String("name", "", "item name")
	price := fs.Float64("price", 0, "price in GHS")
	category := fs.String("category", "", "category (Meals, Noodles, Sandwich, Burger, Drinks)")
	desc := fs.String("desc", "", "description")
	image := fs.String("image", "", "image url")
	original := fs.Float64("original-price", 0, "price before discount")
	fs.Parse(args)

	it := &menu.Item{
		Name:        *name,
		Price:       *price,
		Category:    *category,
		Description: *desc,
		ImageURL:    *image,
		Available:   true,
	}
	if *original > 0 {
		it.OriginalPrice = original
	}

	if err := admin.CreateMenuItem(ctx, it); err != nil {
		return err
	}
	fmt.Printf("menu item %d (%s) created\n", it.ID, it.Name)
	return nil
}

func (a *app) adminMenuEdit(ctx context.Context, admin *client.AdminClient, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: eats admin menu-edit <id> [flags]")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	fs := flag.NewFlagSet("menu-edit", flag.ExitOnError)
	name := fs.String("name", "", "item name")
	price := fs.Float64("price", 0, "price in GHS")
	category := fs.String("category", "", "category")
	desc := fs.String("desc", "", "description")
	image := fs.String("image", "", "image url")
	original := fs.Float64("original-price", 0, "price before discount, 0 clears the discount")
	available := fs.Bool("available", true, "item can be ordered")
	fs.Parse(args[1:])

	it, err := client.NewMenuClient(a.api).GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Only the flags the admin actually set override the current item.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			it.Name = *name
		case "price":
			it.Price = *price
		case "category":
			it.Category = *category
		case "desc":
			it.Description = *desc
		case "image":
			it.ImageURL = *image
		case "original-price":
			if *original > 0 {
				it.OriginalPrice = original
			} else {
				it.OriginalPrice = nil
			}
		case "available":
			it.Available = *available
		}
	})

	if err := admin.UpdateMenuItem(ctx, it); err != nil {
		return err
	}
	fmt.Printf("menu item %d (%s) updated\n", it.ID, it.Name)
	return nil
}

func printOrders(orders []order.Order) {
	for _, o := range orders {
		fmt.Printf("order %s  %s  %s  GHS %.2f  %s\n",
			o.ID, o.CreatedAt.Local().Format(time.DateTime), o.OrderType, o.TotalAmount, o.Status)
		for _, it := range o.Items {
			fmt.Printf("    %s x %d  GHS %.2f\n", it.Name, it.Quantity, it.Price*float64(it.Quantity))
		}
	}
}
