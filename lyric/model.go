// Package lyric implements the lyric/podcast-sharing demo: a song
// library with favorites, downloads, likes, ratings, a line-by-line
// playback cursor, and spoken narration via the platform voice.
package lyric

import "github.com/elizafairlady/go-appdemos/entity"

// Song is one library entry.
type Song struct {
	ID        string
	Title     string
	Artist    string
	Lines     []string // lyric or transcript lines
	Favorites int      // denormalized favorite count
	Likes     int      // denormalized like count
	Ratings   entity.Ratings
}

// Model is the lyric app's canonical state.
type Model struct {
	Songs     []Song
	Favorites entity.IDSet
	Downloads entity.IDSet
	Liked     entity.IDSet
}

// SeedModel returns the library every session starts from.
func SeedModel() Model {
	return Model{
		Favorites: entity.NewIDSet(),
		Downloads: entity.NewIDSet(),
		Liked:     entity.NewIDSet(),
		Songs: []Song{
			{
				ID: "s1", Title: "Harbour Lights", Artist: "The Quiet North",
				Lines: []string{
					"Down past the breakwater, the ferry's last run,",
					"Harbour lights counting us home one by one,",
					"And the tide keeps the time that the town has forgotten.",
				},
				Favorites: 2, Likes: 5,
			},
			{
				ID: "s2", Title: "Episode 12: Desire Paths", Artist: "Field Notes Podcast",
				Lines: []string{
					"A desire path is the route people actually take.",
					"Planners draw the pavement; feet draw the truth.",
					"Today we walk three of them.",
				},
				Likes: 1,
			},
			{
				ID: "s3", Title: "Paper Kites", Artist: "Mireille Fontaine",
				Lines: []string{
					"We folded the morning to fit in our pockets,",
					"Flew paper kites off the fire escape,",
					"Strings of the city tied loose to our wrists.",
				},
				Favorites: 1,
			},
		},
	}
}

// find returns the index of the song with the given ID, or -1.
func (m Model) find(id string) int {
	for i := range m.Songs {
		if m.Songs[i].ID == id {
			return i
		}
	}
	return -1
}

// Song returns the song with the given ID and whether it exists.
func (m Model) Song(id string) (Song, bool) {
	if i := m.find(id); i >= 0 {
		return m.Songs[i], true
	}
	return Song{}, false
}
