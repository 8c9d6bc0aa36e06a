// Package history implements the history-lesson browser demo:
// era-filtered events, a narrated detail view, and a per-event quiz
// with delayed answer feedback.
package history

import "github.com/elizafairlady/go-appdemos/entity"

// Question is one multiple-choice quiz question. Answer indexes the
// correct option.
type Question struct {
	Prompt  string
	Options []string
	Answer  int
}

// Event is one history lesson.
type Event struct {
	ID        string
	Title     string
	Era       string
	Year      int
	Body      string
	Favorites int // denormalized favorite count
	Questions []Question
}

// Quiz is the progress of the current attempt. The zero value is a
// fresh attempt: first question, no score, not completed.
type Quiz struct {
	Index       int  // current question, always in [0, len(Questions))
	Score       int  // non-decreasing within an attempt
	Completed   bool // terminal until an explicit retry
	Locked      bool // answer feedback showing, input ignored
	LastCorrect bool // whether the locked answer was right
}

// Model is the history app's canonical state.
type Model struct {
	Events    []Event
	Favorites entity.IDSet
	Quiz      Quiz
}

// SeedModel returns the lessons every session starts from.
func SeedModel() Model {
	return Model{
		Favorites: entity.NewIDSet(),
		Events: []Event{
			{
				ID: "h1", Title: "The Printing Press", Era: "Renaissance", Year: 1440, Favorites: 2,
				Body: "Gutenberg's movable type reached Mainz around 1440. Books that took months to copy were printed in days. Literacy spread faster than any law could manage.",
				Questions: []Question{
					{Prompt: "Where did Gutenberg work?", Options: []string{"Mainz", "Venice", "Paris"}, Answer: 0},
					{Prompt: "What did movable type replace?", Options: []string{"Oral tradition", "Hand copying", "Woodcut prints"}, Answer: 1},
				},
			},
			{
				ID: "h2", Title: "The Silk Road", Era: "Antiquity", Year: -114,
				Body: "Caravans linked Chang'an to the Mediterranean. Silk moved west while glass and silver moved east. Ideas travelled further than any single trader ever did.",
				Questions: []Question{
					{Prompt: "What moved west along the route?", Options: []string{"Glass", "Silk", "Silver"}, Answer: 1},
				},
			},
			{
				ID: "h3", Title: "The Longitude Problem", Era: "Enlightenment", Year: 1714, Favorites: 1,
				Body: "Sailors could find latitude but not longitude. Parliament offered a fortune for a solution. Harrison's clocks finally kept time at sea.",
				Questions: []Question{
					{Prompt: "Who built the marine chronometers?", Options: []string{"Newton", "Halley", "Harrison"}, Answer: 2},
					{Prompt: "What could sailors already measure?", Options: []string{"Latitude", "Longitude", "Neither"}, Answer: 0},
				},
			},
		},
	}
}

// find returns the index of the event with the given ID, or -1.
func (m Model) find(id string) int {
	for i := range m.Events {
		if m.Events[i].ID == id {
			return i
		}
	}
	return -1
}

// Event returns the event with the given ID and whether it exists.
func (m Model) Event(id string) (Event, bool) {
	if i := m.find(id); i >= 0 {
		return m.Events[i], true
	}
	return Event{}, false
}

// Eras returns the distinct eras in seed order.
func (m Model) Eras() []string {
	var eras []string
	seen := make(map[string]bool)
	for _, e := range m.Events {
		if !seen[e.Era] {
			seen[e.Era] = true
			eras = append(eras, e.Era)
		}
	}
	return eras
}
