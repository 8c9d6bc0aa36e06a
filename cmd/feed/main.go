// Feed is the photo-sharing demo shell.
//
// It reads action lines from stdin, dispatches them through the
// host, and prints the tree snapshot after every change.
//
// Usage: feed
//
// Environment (a .env file is honored):
//
//	APPDEMOS_USER   identity for likes/reactions/uploads (default "you")
//	APPDEMOS_STATE  path of the preference store (default "feed.state.json")
//
// Actions: open id=<post>, close, compose, caption text=<s>,
// attach file=<path>, submit, react id=<post> emoji=<e>,
// like id=<post>, comment id=<post> text=<s>, quit.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/elizafairlady/go-appdemos/feed"
	"github.com/elizafairlady/go-appdemos/host"
	"github.com/elizafairlady/go-appdemos/proto"
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
		log.Printf("feed: .env: %v", err)
	}

	store, err := storage.OpenFile(env("APPDEMOS_STATE", "feed.state.json"))
	if err != nil {
		log.Fatal(err)
	}

	var h *host.Host
	app, err := feed.New(feed.Config{
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
		a, err := proto.ParseAction(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		// attach needs the file contents; the shell reads them so
		// the app only ever sees bytes.
		if a.Kind == "attach" {
			data, err := os.ReadFile(a.Get("file"))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			app.AttachImage(a.Get("file"), data)
			h.Invalidate()
			continue
		}
		h.Dispatch(a) // Notify reprints the tree
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
