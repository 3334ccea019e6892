package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/loungeshop/storefront/internal/api"
	"github.com/loungeshop/storefront/internal/models"
)

func (a *app) shop(ctx context.Context) error {
	products, err := a.Client.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("no products yet")
		return nil
	}
	for _, p := range products {
		status := "available"
		if !p.Available {
			status = "unavailable"
		}
		fmt.Printf("%-24s  %-20s  %10s  %s\n", p.ID, p.Name, p.Price.StringFixed(2), status)
	}
	return nil
}

func (a *app) cartView(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printCart()
		return nil
	}
	switch args[0] {
	case "add":
		if len(args) < 2 {
			return errors.New("cart add: product id required")
		}
		product, err := a.findProduct(ctx, args[1])
		if err != nil {
			return err
		}
		a.Cart.Add(*product)
	case "decrease":
		if len(args) < 2 {
			return errors.New("cart decrease: product id required")
		}
		a.Cart.DecreaseQty(args[1])
	case "remove":
		if len(args) < 2 {
			return errors.New("cart remove: product id required")
		}
		a.Cart.Remove(args[1])
	case "clear":
		a.Cart.Clear()
	default:
		return fmt.Errorf("unknown cart subcommand %q", args[0])
	}
	a.printCart()
	return nil
}

func (a *app) printCart() {
	lines := a.Cart.Lines()
	if len(lines) == 0 {
		fmt.Println("your cart is empty")
		return
	}
	for _, line := range lines {
		fmt.Printf("%-24s  %-20s  x%-3d  %10s\n", line.ProductID, line.Name, line.Quantity, line.Price.StringFixed(2))
	}
	fmt.Printf("total: %s (%d items)\n", a.Cart.Total().StringFixed(2), a.Cart.Count())
}

func (a *app) findProduct(ctx context.Context, id string) (*models.Product, error) {
	products, err := a.Client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %q not found", id)
}

func (a *app) checkout(ctx context.Context, args []string) error {
	if !a.Sessions.Authenticated() {
		return errors.New("please login to place an order")
	}
	if a.Cart.Count() == 0 {
		return errors.New("your cart is empty")
	}
	if len(args) < 3 {
		return errors.New("checkout: street, city and country required")
	}
	address := models.Address{Street: args[0], City: args[1], Country: args[2]}

	order, err := a.Client.PlaceOrder(ctx, a.Cart.CheckoutItems(), a.Cart.Total(), address)
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}
	a.Cart.Clear()
	fmt.Printf("order %s placed, total %s, status %s\n", order.ID, order.Total.StringFixed(2), order.Status)
	return nil
}

func (a *app) myOrders(ctx context.Context) error {
	if !a.Sessions.Authenticated() {
		return errors.New("please login to see your orders")
	}
	orders, err := a.Client.MyOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("you have no orders yet")
		return nil
	}
	printOrders(orders)
	return nil
}

func printOrders(orders []models.Order) {
	for _, o := range orders {
		fmt.Printf("%-24s  %10s  %-10s  %s\n", o.ID, o.Total.StringFixed(2), o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("register: username, email and password required")
	}
	resp, err := a.Sessions.Register(ctx, args[0], args[1], args[2])
	if err != nil {
		return authMessage(err, "registration failed")
	}
	fmt.Printf("welcome, %s\n", resp.User.Username)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("login: email and password required")
	}
	resp, err := a.Sessions.Login(ctx, args[0], args[1])
	if err != nil {
		return authMessage(err, "login failed")
	}
	// role decides the landing view
	if resp.User.Role == models.RoleAdmin {
		fmt.Printf("welcome back, %s — admin dashboard available via 'storefront admin'\n", resp.User.Username)
	} else {
		fmt.Printf("welcome back, %s\n", resp.User.Username)
	}
	return nil
}

func (a *app) forgotPassword(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("forgot-password: email required")
	}
	msg, err := a.Client.ForgotPassword(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *app) resetPassword(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("reset-password: token and new password required")
	}
	msg, err := a.Client.ResetPassword(ctx, args[0], args[1], args[1])
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// authMessage keeps the server's own wording when it sent any, falling
// back to a generic message otherwise.
func authMessage(err error, fallback string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("%s: %s", fallback, apiErr.Message)
	}
	return fmt.Errorf("%s: %w", fallback, err)
}
