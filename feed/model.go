// Package feed implements the photo-sharing feed demo: a scrollable
// list of image posts with emoji reactions, likes, comments, and an
// upload composer with simulated latency.
package feed

import (
	"time"

	"github.com/elizafairlady/go-appdemos/entity"
)

// Comment is a single comment on a post.
type Comment struct {
	ID        string
	Author    string
	Text      string
	CreatedAt time.Time
}

// Post is one feed entry.
type Post struct {
	ID        string
	Author    string
	CreatedAt time.Time
	Caption   string
	Image     string // asset reference
	Reactions entity.Reactions
	Likes     int // denormalized like count
	Comments  []Comment
}

// Draft is the composer's in-progress post. It lives only while the
// composer surface is open.
type Draft struct {
	Caption   string
	ImageName string
	ImageData []byte
}

// Attached reports whether an image has been selected.
func (d Draft) Attached() bool { return d.ImageName != "" }

// Model is the feed's canonical entity state. All transitions go
// through the reducer methods below; they return the next model and
// never mutate the receiver's slices.
type Model struct {
	Posts     []Post
	Liked     entity.IDSet
	MyUploads []string // IDs of the current user's posts, newest first
}

// SeedModel returns the model every session starts from.
func SeedModel() Model {
	now := time.Now()
	return Model{
		Liked: entity.NewIDSet(),
		Posts: []Post{
			{
				ID: "p1", Author: "mona", CreatedAt: now.Add(-2 * time.Hour),
				Caption: "golden hour at the pier", Image: "pier.jpg",
				Reactions: entity.Reactions{{Emoji: "🔥", Users: []string{"liv"}}},
				Likes:     3,
			},
			{
				ID: "p2", Author: "liv", CreatedAt: now.Add(-5 * time.Hour),
				Caption: "sourdough, attempt four", Image: "bread.jpg",
				Likes:   1,
				Comments: []Comment{
					{ID: "c1", Author: "mona", Text: "crumb shot or it didn't happen", CreatedAt: now.Add(-4 * time.Hour)},
				},
			},
			{
				ID: "p3", Author: "theo", CreatedAt: now.Add(-26 * time.Hour),
				Caption: "foggy ridge walk", Image: "ridge.jpg",
			},
		},
	}
}

// find returns the index of the post with the given ID, or -1.
func (m Model) find(id string) int {
	for i := range m.Posts {
		if m.Posts[i].ID == id {
			return i
		}
	}
	return -1
}

// Post returns the post with the given ID and whether it exists.
func (m Model) Post(id string) (Post, bool) {
	if i := m.find(id); i >= 0 {
		return m.Posts[i], true
	}
	return Post{}, false
}
