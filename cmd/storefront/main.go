package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/loungeshop/storefront/internal/api"
	"github.com/loungeshop/storefront/internal/cart"
	"github.com/loungeshop/storefront/internal/config"
	"github.com/loungeshop/storefront/internal/guard"
	"github.com/loungeshop/storefront/internal/logging"
	"github.com/loungeshop/storefront/internal/session"
	"github.com/loungeshop/storefront/internal/state"
)

const usage = `usage: storefront <command> [args]

  shop                                list products
  cart [add|decrease|remove|clear]    show or mutate the cart
  checkout <street> <city> <country>  place an order from the cart
  orders                              list your orders
  register <username> <email> <pw>    create an account and log in
  login <email> <password>            log in
  logout                              log out
  forgot-password <email>             request a reset link
  reset-password <token> <pw>         set a new password
  admin <subcommand>                  admin dashboard (products, orders)
`

type app struct {
	Sessions *session.Store
	Cart     *cart.Store
	Client   *api.Client
	Guard    *guard.Guard
}

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	ctx := logging.IntoContext(context.Background(), logger)

	store, err := state.OpenGorm(cfg.StatePath)
	if err != nil {
		log.Fatalf("open local state: %v", err)
	}

	sessions, err := session.New(store)
	if err != nil {
		log.Fatalf("restore session: %v", err)
	}
	client := api.NewClient(cfg.APIURL, cfg.HTTPTimeout, sessions)
	sessions.Gateway = client

	carts, err := cart.New(store)
	if err != nil {
		log.Fatalf("restore cart: %v", err)
	}

	a := &app{
		Sessions: sessions,
		Cart:     carts,
		Client:   client,
		Guard:    &guard.Guard{Sessions: sessions},
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "shop":
		return a.shop(ctx)
	case "cart":
		return a.cartView(ctx, args)
	case "checkout":
		return a.checkout(ctx, args)
	case "orders":
		return a.myOrders(ctx)
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.Sessions.Logout()
		fmt.Println("logged out")
		return nil
	case "forgot-password":
		return a.forgotPassword(ctx, args)
	case "reset-password":
		return a.resetPassword(ctx, args)
	case "admin":
		return a.admin(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
