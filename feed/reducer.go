package feed

import (
	"errors"
	"time"

	"github.com/elizafairlady/go-appdemos/entity"
)

// Validation errors surfaced by the composer. Each names the field
// the user has to fix.
var (
	ErrCaptionRequired = errors.New("a caption is required")
	ErrImageRequired   = errors.New("select an image file")
	ErrNotAnImage      = errors.New("select an image file (that file is not an image)")
	ErrCommentRequired = errors.New("comment text is required")
)

// ValidateDraft checks the composer's required fields.
func ValidateDraft(d Draft) error {
	if d.Caption == "" {
		return ErrCaptionRequired
	}
	if !d.Attached() {
		return ErrImageRequired
	}
	return nil
}

// AddPost prepends a freshly-built post from the draft and records it
// in the author's uploads.
func (m Model) AddPost(d Draft, author string, now time.Time) Model {
	p := Post{
		ID:        entity.NewID(),
		Author:    author,
		CreatedAt: now,
		Caption:   d.Caption,
		Image:     d.ImageName,
	}
	posts := make([]Post, 0, len(m.Posts)+1)
	posts = append(posts, p)
	posts = append(posts, m.Posts...)
	m.Posts = posts
	m.MyUploads = append([]string{p.ID}, m.MyUploads...)
	return m
}

// ToggleReaction applies user's emoji toggle to the post.
// Unknown post IDs leave the model unchanged.
func (m Model) ToggleReaction(id, emoji, user string) Model {
	i := m.find(id)
	if i < 0 {
		return m
	}
	posts := append([]Post(nil), m.Posts...)
	posts[i].Reactions = posts[i].Reactions.Toggle(emoji, user)
	m.Posts = posts
	return m
}

// ToggleLike flips the current user's like on the post and adjusts
// the denormalized counter, never below zero.
func (m Model) ToggleLike(id string) Model {
	i := m.find(id)
	if i < 0 {
		return m
	}
	liked, member := m.Liked.Toggle(id)
	posts := append([]Post(nil), m.Posts...)
	if member {
		posts[i].Likes++
	} else {
		posts[i].Likes = max(0, posts[i].Likes-1)
	}
	m.Liked = liked
	m.Posts = posts
	return m
}

// AddComment appends a comment to the post. Empty text is rejected
// by the app before it gets here.
func (m Model) AddComment(id, author, text string, now time.Time) Model {
	i := m.find(id)
	if i < 0 {
		return m
	}
	posts := append([]Post(nil), m.Posts...)
	comments := append([]Comment(nil), posts[i].Comments...)
	posts[i].Comments = append(comments, Comment{
		ID:        entity.NewID(),
		Author:    author,
		Text:      text,
		CreatedAt: now,
	})
	m.Posts = posts
	return m
}
