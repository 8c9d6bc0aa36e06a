package entity

import "fmt"

// Ratings maps rater ID to a 1–5 score. Each rater holds at most one
// score per entity; rating again overwrites.
type Ratings map[string]int

// Rate returns the ratings after user scores the entity. Scores
// outside 1–5 are rejected and the input is returned unchanged.
func (r Ratings) Rate(user string, score int) (Ratings, error) {
	if score < 1 || score > 5 {
		return r, fmt.Errorf("rating must be between 1 and 5, got %d", score)
	}
	out := make(Ratings, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[user] = score
	return out, nil
}

// Average returns the mean score, or 0 with no ratings.
func (r Ratings) Average() float64 {
	if len(r) == 0 {
		return 0
	}
	sum := 0
	for _, v := range r {
		sum += v
	}
	return float64(sum) / float64(len(r))
}

// Count returns the number of raters.
func (r Ratings) Count() int { return len(r) }
