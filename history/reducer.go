package history

// AnswerQuiz records an answer to the current question. While
// feedback is showing, or after completion, answers are ignored.
// The score only ever grows within an attempt.
func (m Model) AnswerQuiz(correct bool) Model {
	if m.Quiz.Locked || m.Quiz.Completed {
		return m
	}
	if correct {
		m.Quiz.Score++
	}
	m.Quiz.Locked = true
	m.Quiz.LastCorrect = correct
	return m
}

// AdvanceQuiz moves past the feedback: on to the next question, or
// into the terminal completed state after the last one. The index
// never leaves [0, total).
func (m Model) AdvanceQuiz(total int) Model {
	if !m.Quiz.Locked {
		return m
	}
	m.Quiz.Locked = false
	if m.Quiz.Index+1 >= total {
		m.Quiz.Completed = true
	} else {
		m.Quiz.Index++
	}
	return m
}

// ResetQuiz starts a fresh attempt: index, score, and completed are
// cleared together.
func (m Model) ResetQuiz() Model {
	m.Quiz = Quiz{}
	return m
}

// ToggleFavorite flips membership in the favorites set and adjusts
// the event's denormalized counter, never below zero.
func (m Model) ToggleFavorite(id string) Model {
	i := m.find(id)
	if i < 0 {
		return m
	}
	favs, member := m.Favorites.Toggle(id)
	events := append([]Event(nil), m.Events...)
	if member {
		events[i].Favorites++
	} else {
		events[i].Favorites = max(0, events[i].Favorites-1)
	}
	m.Favorites = favs
	m.Events = events
	return m
}
