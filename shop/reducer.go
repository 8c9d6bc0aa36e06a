package shop

// ToggleWishlist flips membership in the wishlist and adjusts the
// product's denormalized save count, never below zero.
func (m Model) ToggleWishlist(id string) Model {
	i := m.find(id)
	if i < 0 {
		return m
	}
	wish, member := m.Wishlist.Toggle(id)
	products := append([]Product(nil), m.Products...)
	if member {
		products[i].Saves++
	} else {
		products[i].Saves = max(0, products[i].Saves-1)
	}
	m.Wishlist = wish
	m.Products = products
	return m
}

// Rate records user's 1–5 score for the product, replacing any prior
// score from the same user.
func (m Model) Rate(id, user string, score int) (Model, error) {
	i := m.find(id)
	if i < 0 {
		return m, nil
	}
	ratings, err := m.Products[i].Ratings.Rate(user, score)
	if err != nil {
		return m, err
	}
	products := append([]Product(nil), m.Products...)
	products[i].Ratings = ratings
	m.Products = products
	return m, nil
}

// AddToCart increments the product's cart line, creating it at
// quantity 1.
func (m Model) AddToCart(id string) Model {
	if m.find(id) < 0 {
		return m
	}
	cart := append([]CartLine(nil), m.Cart...)
	for i := range cart {
		if cart[i].ProductID == id {
			cart[i].Qty++
			m.Cart = cart
			return m
		}
	}
	m.Cart = append(cart, CartLine{ProductID: id, Qty: 1})
	return m
}

// RemoveFromCart decrements the product's cart line; the line is
// pruned when the quantity reaches zero.
func (m Model) RemoveFromCart(id string) Model {
	cart := make([]CartLine, 0, len(m.Cart))
	for _, l := range m.Cart {
		if l.ProductID == id {
			l.Qty--
			if l.Qty <= 0 {
				continue
			}
		}
		cart = append(cart, l)
	}
	m.Cart = cart
	return m
}

// ClearCart empties the cart.
func (m Model) ClearCart() Model {
	m.Cart = nil
	return m
}
