package shop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elizafairlady/go-appdemos/view"
)

// View builds the storefront's component tree.
func (a *App) View() *view.Node {
	a.mu.Lock()
	defer a.mu.Unlock()

	activeCat := a.flags.Get("tab")

	tabs := []*view.Node{view.Tab("tab-all", "All", activeCat == "").Prop("on", "tab").Prop("cat", "")}
	for _, cat := range a.model.Categories() {
		tabs = append(tabs,
			view.Tab("tab-"+cat, cat, activeCat == cat).Prop("on", "tab").Prop("cat", cat),
		)
	}

	var body []*view.Node
	body = append(body, view.HBox("tabs", tabs...).PropInt("gap", 2))

	if msg := a.notices.Message(); msg != "" {
		body = append(body,
			view.TextNode("notice", msg).Prop("fg", "alert").PropInt("pad", 4),
		)
	}

	for _, p := range a.model.Products {
		if activeCat != "" && p.Category != activeCat {
			continue
		}
		body = append(body, a.productCard(p))
	}

	body = append(body, a.cartBlock())

	root := view.VBox("root", body...).PropInt("pad", 4).PropInt("gap", 4)

	if cur := a.surfaces.Current(); strings.HasPrefix(cur, "product/") {
		if p, ok := a.model.Product(strings.TrimPrefix(cur, "product/")); ok {
			root.Child(a.detailModal(p))
		}
	}
	return root
}

func (a *App) productCard(p Product) *view.Node {
	return view.Row("product-"+p.ID,
		view.TextNode("name-"+p.ID, p.Name),
		view.TextNode("price-"+p.ID, "$"+p.Price.StringFixed(2)),
		view.HBox("meta-"+p.ID,
			view.Checkbox("wish-"+p.ID, "save ("+strconv.Itoa(p.Saves)+")", a.model.Wishlist.Has(p.ID)).
				Prop("on", "wish").Prop("id", p.ID),
			view.Button("add-"+p.ID, "Add to cart").Prop("on", "cart-add").Prop("id", p.ID),
			view.Button("open-"+p.ID, "Details").Prop("on", "open").Prop("id", p.ID),
		).PropInt("gap", 4),
	).PropInt("pad", 4)
}

func (a *App) cartBlock() *view.Node {
	if len(a.model.Cart) == 0 {
		return view.TextNode("cart-empty", "Cart is empty.").Prop("fg", "dim")
	}
	var lines []*view.Node
	for _, l := range a.model.Cart {
		p, ok := a.model.Product(l.ProductID)
		if !ok {
			continue
		}
		lines = append(lines,
			view.HBox("cart-"+l.ProductID,
				view.TextNode("cart-name-"+l.ProductID, p.Name+" × "+strconv.Itoa(l.Qty)),
				view.Button("cart-less-"+l.ProductID, "−").Prop("on", "cart-del").Prop("id", l.ProductID),
				view.Button("cart-more-"+l.ProductID, "+").Prop("on", "cart-add").Prop("id", l.ProductID),
			).PropInt("gap", 2),
		)
	}
	lines = append(lines,
		view.TextNode("cart-total", "Total $"+a.model.CartTotal().StringFixed(2)),
		view.Button("cart-clear", "Clear cart").Prop("on", "cart-clear"),
	)
	return view.VBox("cart", lines...).PropInt("gap", 2)
}

func (a *App) detailModal(p Product) *view.Node {
	rating := "not rated"
	if p.Ratings.Count() > 0 {
		rating = fmt.Sprintf("%.1f (%d)", p.Ratings.Average(), p.Ratings.Count())
	}
	var stars []*view.Node
	for i := 1; i <= 5; i++ {
		stars = append(stars,
			view.Button("rate-"+strconv.Itoa(i), strconv.Itoa(i)+"★").
				Prop("on", "rate").Prop("id", p.ID).Prop("score", strconv.Itoa(i)),
		)
	}
	return view.Modal("detail-"+p.ID,
		view.TextNode("detail-name", p.Name),
		view.TextNode("detail-price", "$"+p.Price.StringFixed(2)),
		view.TextNode("detail-rating", rating).Prop("fg", "dim"),
		view.HBox("detail-stars", stars...).PropInt("gap", 2),
		view.Button("detail-add", "Add to cart").Prop("on", "cart-add").Prop("id", p.ID),
		view.Button("detail-close", "Close").Prop("on", "close"),
	)
}
