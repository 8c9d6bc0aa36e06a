package host

import (
	"strings"
	"testing"

	"github.com/elizafairlady/go-appdemos/proto"
	"github.com/elizafairlady/go-appdemos/view"
)

// countApp renders how many actions it has handled.
type countApp struct {
	handled []*proto.Action
}

func (a *countApp) View() *view.Node {
	return view.VBox("root", view.TextNode("n", "x")).PropInt("count", len(a.handled))
}

func (a *countApp) Handle(act *proto.Action) {
	a.handled = append(a.handled, act)
}

func TestTreeCachedUntilDispatch(t *testing.T) {
	h := New(&countApp{})
	t1 := h.Tree()
	t2 := h.Tree()
	if t1 != t2 {
		t.Error("Tree recomputed without invalidation")
	}
	rev := h.Rev()
	h.Dispatch(proto.New("tap"))
	if h.Tree() == t1 {
		t.Error("Tree not recomputed after Dispatch")
	}
	if h.Rev() != rev+1 {
		t.Errorf("Rev = %d, want %d", h.Rev(), rev+1)
	}
}

func TestDispatchReachesApp(t *testing.T) {
	app := &countApp{}
	h := New(app)
	h.Dispatch(proto.New("open").With("id", "p1"))
	if len(app.handled) != 1 || app.handled[0].Get("id") != "p1" {
		t.Errorf("handled = %+v", app.handled)
	}
}

func TestInvalidateNotifies(t *testing.T) {
	h := New(&countApp{})
	notified := 0
	h.Notify = func() { notified++ }
	h.Tree()
	h.Invalidate()
	if notified != 1 {
		t.Errorf("notified = %d", notified)
	}
	// fresh tree, bumped rev
	before := h.Rev()
	h.Tree()
	if h.Rev() != before+1 {
		t.Error("Invalidate did not drop the cached tree")
	}
}

func TestProcess(t *testing.T) {
	app := &countApp{}
	h := New(app)
	if err := h.Process("like id=p2\n"); err != nil {
		t.Fatal(err)
	}
	if len(app.handled) != 1 || app.handled[0].Kind != "like" {
		t.Errorf("handled = %+v", app.handled)
	}
	if err := h.Process("bad field"); err == nil {
		t.Error("malformed line did not error")
	}
	if len(app.handled) != 1 {
		t.Error("malformed line reached the app")
	}
}

func TestActionLog(t *testing.T) {
	h := New(&countApp{})
	h.ActionLog = []string{}
	h.Dispatch(proto.New("open").With("id", "p1"))
	h.Dispatch(proto.New("close"))
	if len(h.ActionLog) != 2 || !strings.HasPrefix(h.ActionLog[0], "open") {
		t.Errorf("ActionLog = %v", h.ActionLog)
	}
}

func TestTreeTextCarriesRev(t *testing.T) {
	h := New(&countApp{})
	txt := h.TreeText()
	if !strings.HasPrefix(txt, "rev 1\n") {
		t.Errorf("TreeText = %q", txt)
	}
}
