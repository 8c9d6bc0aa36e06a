// History is the history-lesson browser demo shell.
//
// It reads action lines from stdin, dispatches them through the
// host, and prints the tree snapshot after every change, including
// changes driven by the narration timer and quiz feedback delay.
//
// Usage: history
//
// Environment (a .env file is honored):
//
//	APPDEMOS_USER   identity for favorites (default "you")
//	APPDEMOS_STATE  path of the preference store (default "history.state.json")
//
// Actions: open id=<event>, close, tab era=<era>, fav id=<event>,
// narrate, stop, answer choice=<n>, retry, quit.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/elizafairlady/go-appdemos/history"
	"github.com/elizafairlady/go-appdemos/host"
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
		log.Printf("history: .env: %v", err)
	}

	store, err := storage.OpenFile(env("APPDEMOS_STATE", "history.state.json"))
	if err != nil {
		log.Fatal(err)
	}

	var h *host.Host
	app, err := history.New(history.Config{
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
