package entity

// Bucket is one emoji reaction group on an entity: the emoji and the
// distinct users who applied it. A user appears at most once.
type Bucket struct {
	Emoji string
	Users []string
}

// Count returns the number of users in the bucket.
func (b Bucket) Count() int { return len(b.Users) }

// Has reports whether user is in the bucket.
func (b Bucket) Has(user string) bool {
	for _, u := range b.Users {
		if u == user {
			return true
		}
	}
	return false
}

// Reactions is the ordered list of reaction buckets on an entity.
// Buckets with zero users are never present.
type Reactions []Bucket

// Toggle returns the reactions after user toggles emoji:
// no bucket for emoji creates one holding only user; a bucket
// containing user loses them (and is pruned if emptied); a bucket
// without user gains them. Toggling twice restores the input.
func (r Reactions) Toggle(emoji, user string) Reactions {
	out := make(Reactions, 0, len(r)+1)
	found := false
	for _, b := range r {
		if b.Emoji != emoji {
			out = append(out, b)
			continue
		}
		found = true
		if b.Has(user) {
			users := make([]string, 0, len(b.Users)-1)
			for _, u := range b.Users {
				if u != user {
					users = append(users, u)
				}
			}
			if len(users) == 0 {
				continue // prune the empty bucket
			}
			out = append(out, Bucket{Emoji: emoji, Users: users})
		} else {
			users := make([]string, len(b.Users), len(b.Users)+1)
			copy(users, b.Users)
			out = append(out, Bucket{Emoji: emoji, Users: append(users, user)})
		}
	}
	if !found {
		out = append(out, Bucket{Emoji: emoji, Users: []string{user}})
	}
	return out
}

// Count returns the number of users who reacted with emoji.
func (r Reactions) Count(emoji string) int {
	for _, b := range r {
		if b.Emoji == emoji {
			return len(b.Users)
		}
	}
	return 0
}

// Has reports whether user has reacted with emoji.
func (r Reactions) Has(emoji, user string) bool {
	for _, b := range r {
		if b.Emoji == emoji {
			return b.Has(user)
		}
	}
	return false
}

// Total returns the number of reactions across all buckets.
func (r Reactions) Total() int {
	n := 0
	for _, b := range r {
		n += len(b.Users)
	}
	return n
}
