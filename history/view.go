package history

import (
	"strconv"

	"github.com/elizafairlady/go-appdemos/speech"
	"github.com/elizafairlady/go-appdemos/view"
)

// View builds the history browser's component tree.
func (a *App) View() *view.Node {
	a.mu.Lock()
	defer a.mu.Unlock()

	activeEra := a.flags.Get("tab")

	tabs := []*view.Node{view.Tab("tab-all", "All", activeEra == "").Prop("on", "tab").Prop("era", "")}
	for _, era := range a.model.Eras() {
		tabs = append(tabs,
			view.Tab("tab-"+era, era, activeEra == era).Prop("on", "tab").Prop("era", era),
		)
	}

	var body []*view.Node
	body = append(body, view.HBox("tabs", tabs...).PropInt("gap", 2))

	if msg := a.notices.Message(); msg != "" {
		body = append(body,
			view.TextNode("notice", msg).Prop("fg", "alert").PropInt("pad", 4),
		)
	}

	for _, e := range a.model.Events {
		if activeEra != "" && e.Era != activeEra {
			continue
		}
		body = append(body,
			view.Row("event-"+e.ID,
				view.TextNode("title-"+e.ID, e.Title),
				view.TextNode("era-"+e.ID, e.Era+" · "+strconv.Itoa(e.Year)).Prop("fg", "dim"),
				view.Checkbox("fav-"+e.ID, "favorite ("+strconv.Itoa(e.Favorites)+")", a.model.Favorites.Has(e.ID)).
					Prop("on", "fav").Prop("id", e.ID),
				view.Button("open-"+e.ID, "Read").Prop("on", "open").Prop("id", e.ID),
			).PropInt("pad", 4),
		)
	}

	root := view.VBox("root", body...).PropInt("pad", 4).PropInt("gap", 4)

	if id := a.openEventID(); id != "" {
		if e, ok := a.model.Event(id); ok {
			root.Child(a.detailModal(e))
		}
	}
	return root
}

func (a *App) detailModal(e Event) *view.Node {
	var lines []*view.Node
	for i, s := range speech.Sentences(e.Body) {
		n := view.TextNode("line-"+e.ID+"-"+strconv.Itoa(i), s)
		if a.narration.Active() && i == a.cursor {
			n.Prop("highlight", "1")
		}
		lines = append(lines, n)
	}

	narrate := view.Button("narrate", "Narrate").Prop("on", "narrate")
	if a.narration.Active() {
		narrate = view.Button("narrate", "Stop").Prop("on", "stop")
	}

	return view.Modal("detail-"+e.ID,
		view.TextNode("detail-title", e.Title),
		view.VBox("body-"+e.ID, lines...).PropInt("gap", 2),
		narrate,
		a.quizBlock(e),
		view.Button("detail-close", "Close").Prop("on", "close"),
	)
}

func (a *App) quizBlock(e Event) *view.Node {
	q := a.model.Quiz
	if len(e.Questions) == 0 {
		return view.TextNode("quiz-none", "No quiz for this lesson.").Prop("fg", "dim")
	}
	if q.Completed {
		return view.VBox("quiz",
			view.TextNode("quiz-done",
				"Quiz complete: "+strconv.Itoa(q.Score)+"/"+strconv.Itoa(len(e.Questions))),
			view.Button("quiz-retry", "Retry").Prop("on", "retry"),
		).PropInt("gap", 2)
	}

	question := e.Questions[q.Index]
	nodes := []*view.Node{
		view.TextNode("quiz-progress",
			"Question "+strconv.Itoa(q.Index+1)+" of "+strconv.Itoa(len(e.Questions))+
				" · score "+strconv.Itoa(q.Score)).Prop("fg", "dim"),
		view.TextNode("quiz-prompt", question.Prompt),
	}
	if q.Locked {
		feedback := "Not quite."
		if q.LastCorrect {
			feedback = "Correct!"
		}
		nodes = append(nodes, view.TextNode("quiz-feedback", feedback).Prop("highlight", "1"))
	} else {
		for i, opt := range question.Options {
			nodes = append(nodes,
				view.Button("quiz-opt-"+strconv.Itoa(i), opt).
					Prop("on", "answer").Prop("choice", strconv.Itoa(i)),
			)
		}
	}
	return view.VBox("quiz", nodes...).PropInt("gap", 2)
}
