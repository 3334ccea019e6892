package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/loungeshop/storefront/internal/guard"
	"github.com/loungeshop/storefront/internal/models"
)

const adminUsage = `usage: storefront admin <subcommand>

  products                      list products
  products add <name> <price> [image-file]
  products toggle <id>          flip availability
  products delete <id>
  orders                        list all orders
  orders status <id> <status>   update an order
  orders delete <id>
`

func (a *app) admin(ctx context.Context, args []string) error {
	switch a.Guard.Evaluate(models.RoleAdmin) {
	case guard.RedirectLogin:
		return errors.New("please login first")
	case guard.RedirectHome:
		return errors.New("admins only; back to the shop you go")
	}

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, adminUsage)
		return errors.New("admin: subcommand required")
	}
	switch args[0] {
	case "products":
		return a.adminProducts(ctx, args[1:])
	case "orders":
		return a.adminOrders(ctx, args[1:])
	default:
		fmt.Fprint(os.Stderr, adminUsage)
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

func (a *app) adminProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.shop(ctx)
	}
	switch args[0] {
	case "add":
		if len(args) < 3 {
			return errors.New("admin products add: name and price required")
		}
		price, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", args[2], err)
		}
		var product *models.Product
		if len(args) > 3 {
			f, err := os.Open(args[3])
			if err != nil {
				return err
			}
			defer f.Close()
			product, err = a.Client.CreateProduct(ctx, args[1], price, filepath.Base(args[3]), f)
			if err != nil {
				return err
			}
		} else {
			product, err = a.Client.CreateProduct(ctx, args[1], price, "", nil)
			if err != nil {
				return err
			}
		}
		fmt.Printf("created product %s (%s)\n", product.Name, product.ID)
		return nil
	case "toggle":
		if len(args) < 2 {
			return errors.New("admin products toggle: product id required")
		}
		product, err := a.Client.ToggleProductAvailability(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s is now available=%v\n", product.Name, product.Available)
		return nil
	case "delete":
		if len(args) < 2 {
			return errors.New("admin products delete: product id required")
		}
		if err := a.Client.DeleteProduct(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("product deleted")
		return nil
	default:
		return fmt.Errorf("unknown products subcommand %q", args[0])
	}
}

func (a *app) adminOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		orders, err := a.Client.ListOrders(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("no orders")
			return nil
		}
		printOrders(orders)
		return nil
	}
	switch args[0] {
	case "status":
		if len(args) < 3 {
			return errors.New("admin orders status: order id and status required")
		}
		order, err := a.Client.UpdateOrderStatus(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("order %s is now %s\n", order.ID, order.Status)
		return nil
	case "delete":
		if len(args) < 2 {
			return errors.New("admin orders delete: order id required")
		}
		if err := a.Client.DeleteOrder(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("order deleted")
		return nil
	default:
		return fmt.Errorf("unknown orders subcommand %q", args[0])
	}
}
