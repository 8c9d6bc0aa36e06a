// Package shop implements the e-commerce storefront demo: a product
// catalog with category tabs, a wishlist, per-user ratings, and a
// cart with decimal money arithmetic.
package shop

import (
	"github.com/shopspring/decimal"

	"github.com/elizafairlady/go-appdemos/entity"
)

// Product is one catalog entry.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal
	Saves    int // denormalized wishlist count
	Ratings  entity.Ratings
}

// CartLine is one cart entry. Qty is always at least 1; a line that
// would drop to 0 is removed instead.
type CartLine struct {
	ProductID string
	Qty       int
}

// Model is the storefront's canonical state.
type Model struct {
	Products []Product
	Wishlist entity.IDSet
	Cart     []CartLine
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// SeedModel returns the catalog every session starts from.
func SeedModel() Model {
	return Model{
		Wishlist: entity.NewIDSet(),
		Products: []Product{
			{ID: "sku1", Name: "Enamel pour-over kettle", Category: "Kitchen", Price: price("42.50"), Saves: 4},
			{ID: "sku2", Name: "Linen apron", Category: "Kitchen", Price: price("28.00")},
			{ID: "sku3", Name: "Walnut desk organizer", Category: "Office", Price: price("54.90"), Saves: 1},
			{ID: "sku4", Name: "Brass page holder", Category: "Office", Price: price("12.75")},
			{ID: "sku5", Name: "Wool camp blanket", Category: "Outdoor", Price: price("89.00"), Saves: 7},
		},
	}
}

// find returns the index of the product with the given ID, or -1.
func (m Model) find(id string) int {
	for i := range m.Products {
		if m.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// Product returns the product with the given ID and whether it exists.
func (m Model) Product(id string) (Product, bool) {
	if i := m.find(id); i >= 0 {
		return m.Products[i], true
	}
	return Product{}, false
}

// Categories returns the distinct categories in seed order.
func (m Model) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, p := range m.Products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// CartQty returns the cart quantity for the product (0 if absent).
func (m Model) CartQty(id string) int {
	for _, l := range m.Cart {
		if l.ProductID == id {
			return l.Qty
		}
	}
	return 0
}

// CartTotal returns the exact decimal sum over the cart.
func (m Model) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range m.Cart {
		if i := m.find(l.ProductID); i >= 0 {
			total = total.Add(m.Products[i].Price.Mul(decimal.NewFromInt(int64(l.Qty))))
		}
	}
	return total
}
