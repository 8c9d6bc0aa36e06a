// Shop is the storefront demo shell.
//
// It reads action lines from stdin, dispatches them through the
// host, and prints the tree snapshot after every change.
//
// Usage: shop
//
// Environment (a .env file is honored):
//
//	APPDEMOS_USER   identity for wishlist/ratings (default "you")
//	APPDEMOS_STATE  path of the preference store (default "shop.state.json")
//
// Actions: open id=<sku>, close, tab cat=<category>, wish id=<sku>,
// rate id=<sku> score=<1-5>, cart-add id=<sku>, cart-del id=<sku>,
// cart-clear, quit.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/elizafairlady/go-appdemos/host"
	"github.com/elizafairlady/go-appdemos/shop"
	"github.com/elizafairlady/go-appdemos/storage"
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("shop: .env: %v", err)
	}

	store, err := storage.OpenFile(env("APPDEMOS_STATE", "shop.state.json"))
	if err != nil {
		log.Fatal(err)
	}

	var h *host.Host
	app, err := shop.New(shop.Config{
		CurrentUser: env("APPDEMOS_USER", "you"),
		Store:       store,
		OnChange: func() {
			if h != nil {
				h.Invalidate()
			}
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	h = host.New(app)
	h.Notify = func() { fmt.Print(h.TreeText()) }

	fmt.Print(h.TreeText())
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}
		if err := h.Process(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
