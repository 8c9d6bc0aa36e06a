// Lyric is the lyric/podcast-sharing demo shell.
//
// It reads action lines from stdin, dispatches them through the
// host, and prints the tree snapshot after every change. No platform
// voice is wired in, so "speak" degrades to the in-app notification.
//
// Usage: lyric
//
// Environment (a .env file is honored):
//
//	APPDEMOS_USER   identity for likes/favorites/ratings (default "you")
//	APPDEMOS_STATE  path of the preference store (default "lyric.state.json")
//
// Actions: open id=<song>, close, search q=<text>, fav id=<song>,
// download id=<song>, like id=<song>, rate id=<song> score=<1-5>,
// play, stop, speak, dark on=<true|false>, font scale=<float>, quit.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/elizafairlady/go-appdemos/host"
	"github.com/elizafairlady/go-appdemos/lyric"
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
		log.Printf("lyric: .env: %v", err)
	}

	store, err := storage.OpenFile(env("APPDEMOS_STATE", "lyric.state.json"))
	if err != nil {
		log.Fatal(err)
	}

	var h *host.Host
	app, err := lyric.New(lyric.Config{
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
