package feed

import (
	"strconv"
	"strings"

	"github.com/elizafairlady/go-appdemos/view"
)

// View builds the feed's component tree from the current model.
func (a *App) View() *view.Node {
	a.mu.Lock()
	defer a.mu.Unlock()

	var body []*view.Node

	body = append(body,
		view.HBox("toolbar",
			view.TextNode("title", "Feed").PropInt("pad", 4),
			view.Spacer("sp-toolbar"),
			view.Button("compose", "+ New post").Prop("on", "compose"),
		).PropInt("pad", 2),
	)

	if msg := a.notices.Message(); msg != "" {
		body = append(body,
			view.TextNode("notice", msg).Prop("fg", "alert").PropInt("pad", 4),
		)
	}

	for _, p := range a.model.Posts {
		body = append(body, a.postCard(p))
	}

	root := view.VBox("root", body...).PropInt("pad", 4).PropInt("gap", 4)

	switch cur := a.surfaces.Current(); {
	case cur == composerID:
		root.Child(a.composerModal())
	case strings.HasPrefix(cur, "post/"):
		if p, ok := a.model.Post(strings.TrimPrefix(cur, "post/")); ok {
			root.Child(a.detailModal(p))
		}
	}
	return root
}

func (a *App) postCard(p Post) *view.Node {
	var reacts []*view.Node
	for _, emoji := range DefaultEmoji {
		label := emoji
		if n := p.Reactions.Count(emoji); n > 0 {
			label += " " + strconv.Itoa(n)
		}
		b := view.Button("react-"+p.ID+"-"+emoji, label).
			Prop("on", "react").Prop("id", p.ID).Prop("emoji", emoji)
		if p.Reactions.Has(emoji, a.cfg.CurrentUser) {
			b.Prop("active", "1")
		}
		reacts = append(reacts, b)
	}
	return view.Row("post-"+p.ID,
		view.Image("img-"+p.ID, p.Image),
		view.TextNode("caption-"+p.ID, p.Caption),
		view.TextNode("by-"+p.ID, p.Author).Prop("fg", "dim"),
		view.HBox("reacts-"+p.ID, reacts...).PropInt("gap", 2),
		view.HBox("meta-"+p.ID,
			view.Checkbox("like-"+p.ID, "like ("+strconv.Itoa(p.Likes)+")", a.model.Liked.Has(p.ID)).
				Prop("on", "like").Prop("id", p.ID),
			view.Button("open-"+p.ID, strconv.Itoa(len(p.Comments))+" comments").
				Prop("on", "open").Prop("id", p.ID),
		).PropInt("gap", 4),
	).PropInt("pad", 4)
}

func (a *App) composerModal() *view.Node {
	preview := "no image selected"
	if a.draft.Attached() {
		preview = a.draft.ImageName
	}
	status := "Share"
	if a.uploading {
		status = "Uploading…"
	}
	return view.Modal("composer-modal",
		view.TextNode("composer-title", "New post"),
		view.TextBox("composer-caption").Prop("bind", "caption").
			Prop("placeholder", "write a caption...").Text(a.draft.Caption),
		view.TextNode("composer-preview", preview).Prop("fg", "dim"),
		view.Button("composer-submit", status).Prop("on", "submit"),
		view.Button("composer-cancel", "Cancel").Prop("on", "close"),
	)
}

func (a *App) detailModal(p Post) *view.Node {
	var comments []*view.Node
	for _, c := range p.Comments {
		comments = append(comments,
			view.TextNode("comment-"+c.ID, c.Author+": "+c.Text),
		)
	}
	if len(comments) == 0 {
		comments = append(comments,
			view.TextNode("comments-empty", "No comments yet.").Prop("fg", "dim"),
		)
	}
	return view.Modal("detail-"+p.ID,
		view.Image("detail-img-"+p.ID, p.Image),
		view.TextNode("detail-caption", p.Caption),
		view.VBox("comments", comments...).PropInt("gap", 2),
		view.TextBox("comment-input").Prop("bind", "comment").Prop("id", p.ID),
		view.Button("detail-close", "Close").Prop("on", "close"),
	)
}
