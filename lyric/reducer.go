package lyric

// ToggleFavorite flips membership in the favorites set and adjusts
// the song's denormalized counter, never below zero.
func (m Model) ToggleFavorite(id string) Model {
	i := m.find(id)
	if i < 0 {
		return m
	}
	favs, member := m.Favorites.Toggle(id)
	songs := append([]Song(nil), m.Songs...)
	if member {
		songs[i].Favorites++
	} else {
		songs[i].Favorites = max(0, songs[i].Favorites-1)
	}
	m.Favorites = favs
	m.Songs = songs
	return m
}

// ToggleDownload flips membership in the downloads set.
func (m Model) ToggleDownload(id string) Model {
	if m.find(id) < 0 {
		return m
	}
	m.Downloads, _ = m.Downloads.Toggle(id)
	return m
}

// ToggleLike flips the current user's like and adjusts the counter,
// never below zero.
func (m Model) ToggleLike(id string) Model {
	i := m.find(id)
	if i < 0 {
		return m
	}
	liked, member := m.Liked.Toggle(id)
	songs := append([]Song(nil), m.Songs...)
	if member {
		songs[i].Likes++
	} else {
		songs[i].Likes = max(0, songs[i].Likes-1)
	}
	m.Liked = liked
	m.Songs = songs
	return m
}

// Rate records user's 1–5 score for the song, replacing any prior
// score from the same user. Out-of-range scores leave the model
// unchanged and return the error.
func (m Model) Rate(id, user string, score int) (Model, error) {
	i := m.find(id)
	if i < 0 {
		return m, nil
	}
	ratings, err := m.Songs[i].Ratings.Rate(user, score)
	if err != nil {
		return m, err
	}
	songs := append([]Song(nil), m.Songs...)
	songs[i].Ratings = ratings
	m.Songs = songs
	return m, nil
}
