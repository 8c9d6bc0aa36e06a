package lyric

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elizafairlady/go-appdemos/view"
)

// View builds the lyric app's component tree.
func (a *App) View() *view.Node {
	a.mu.Lock()
	defer a.mu.Unlock()

	query := a.flags.Get("search")

	var body []*view.Node
	body = append(body,
		view.HBox("toolbar",
			view.TextNode("title", "Lyrics & Podcasts").PropInt("pad", 4),
			view.Spacer("sp-toolbar"),
			view.TextBox("search").Prop("bind", "search").Prop("placeholder", "search...").Text(query),
			view.Checkbox("dark", "dark", a.dark).Prop("on", "dark"),
		).PropInt("pad", 2),
	)

	if msg := a.notices.Message(); msg != "" {
		body = append(body,
			view.TextNode("notice", msg).Prop("fg", "alert").PropInt("pad", 4),
		)
	}

	for _, s := range a.model.Songs {
		if query != "" && !matches(s, query) {
			continue
		}
		body = append(body, a.songRow(s))
	}

	root := view.VBox("root", body...).PropInt("pad", 4).PropInt("gap", 4)
	if a.dark {
		root.Prop("theme", "dark")
	}
	root.Prop("fontScale", strconv.FormatFloat(a.fontScale, 'g', -1, 64))

	if id := a.openSongID(); id != "" {
		if s, ok := a.model.Song(id); ok {
			root.Child(a.detailModal(s))
		}
	}
	return root
}

func matches(s Song, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Artist), q)
}

func (a *App) songRow(s Song) *view.Node {
	return view.Row("song-"+s.ID,
		view.TextNode("title-"+s.ID, s.Title),
		view.TextNode("artist-"+s.ID, s.Artist).Prop("fg", "dim"),
		view.HBox("meta-"+s.ID,
			view.Checkbox("fav-"+s.ID, "♥ "+strconv.Itoa(s.Favorites), a.model.Favorites.Has(s.ID)).
				Prop("on", "fav").Prop("id", s.ID),
			view.Checkbox("dl-"+s.ID, "download", a.model.Downloads.Has(s.ID)).
				Prop("on", "download").Prop("id", s.ID),
			view.Checkbox("like-"+s.ID, "like ("+strconv.Itoa(s.Likes)+")", a.model.Liked.Has(s.ID)).
				Prop("on", "like").Prop("id", s.ID),
			view.Button("open-"+s.ID, "Open").Prop("on", "open").Prop("id", s.ID),
		).PropInt("gap", 4),
	).PropInt("pad", 4)
}

func (a *App) detailModal(s Song) *view.Node {
	var lines []*view.Node
	for i, line := range s.Lines {
		n := view.TextNode("line-"+s.ID+"-"+strconv.Itoa(i), line)
		if i == a.cursor {
			n.Prop("highlight", "1")
		}
		lines = append(lines, n)
	}

	rating := "not rated"
	if s.Ratings.Count() > 0 {
		rating = fmt.Sprintf("%.1f (%d)", s.Ratings.Average(), s.Ratings.Count())
	}

	controls := []*view.Node{
		view.Button("play", "Play").Prop("on", "play"),
		view.Button("speak", "Read aloud").Prop("on", "speak"),
	}
	if a.playback.Active() || a.speaking {
		controls = []*view.Node{view.Button("stop", "Stop").Prop("on", "stop")}
	}

	var stars []*view.Node
	for i := 1; i <= 5; i++ {
		stars = append(stars,
			view.Button("rate-"+strconv.Itoa(i), strconv.Itoa(i)+"★").
				Prop("on", "rate").Prop("id", s.ID).Prop("score", strconv.Itoa(i)),
		)
	}

	return view.Modal("detail-"+s.ID,
		view.TextNode("detail-title", s.Title+" — "+s.Artist),
		view.VBox("lines-"+s.ID, lines...).PropInt("gap", 2),
		view.HBox("controls", controls...).PropInt("gap", 4),
		view.HBox("rating",
			append([]*view.Node{view.TextNode("rating-value", rating).Prop("fg", "dim")}, stars...)...,
		).PropInt("gap", 2),
		view.Button("detail-close", "Close").Prop("on", "close"),
	)
}
