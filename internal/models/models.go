package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the remote API serializes prices as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID        string          `json:"_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Available bool            `json:"available"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CartLine is one product entry in the cart. Display fields are copied
// from the product at insertion time and do not track later catalog edits.
type CartLine struct {
	ProductID string          `json:"_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Available bool            `json:"available"`
	Quantity  uint            `json:"quantity"`
}

type OrderItem struct {
	Product  string `json:"product"`
	Quantity uint   `json:"quantity"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Order struct {
	ID        string          `json:"_id"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Address   Address         `json:"address"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
