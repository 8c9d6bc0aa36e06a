package view

import (
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestBuilders(t *testing.T) {
	n := VBox("root",
		TextNode("title", "Feed"),
		Button("post", "Post"),
		Checkbox("dark", "Dark mode", true),
	)
	if n.Type != "vbox" || len(n.Children) != 3 {
		t.Fatalf("root = %s with %d children", n.Type, len(n.Children))
	}
	if got := n.Children[0].Props["text"]; got != "Feed" {
		t.Errorf("title text = %q", got)
	}
	if got := n.Children[2].Props["checked"]; got != "1" {
		t.Errorf("checked = %q", got)
	}
	if got := n.Children[1].Props["focusable"]; got != "1" {
		t.Errorf("button focusable = %q", got)
	}
}

func TestFind(t *testing.T) {
	root := VBox("root",
		Row("r1", TextNode("t1", "a")),
		Row("r2", TextNode("t2", "b")),
	)
	if n := root.Find("t2"); n == nil || n.Props["text"] != "b" {
		t.Errorf("Find(t2) = %+v", n)
	}
	if n := root.Find("missing"); n != nil {
		t.Errorf("Find(missing) = %+v", n)
	}
	var nilNode *Node
	if n := nilNode.Find("x"); n != nil {
		t.Error("nil receiver Find returned a node")
	}
}

func TestTreeText(t *testing.T) {
	root := VBox("root",
		TextNode("msg", "hello world"),
	)
	got := TreeText(root, 7)
	want := strings.Join([]string{
		"rev 7",
		"root root",
		"node root vbox",
		"child root msg",
		"node msg text",
		`prop msg text="hello world"`,
		"",
	}, "\n")
	if got != want {
		t.Errorf("TreeText =\n%s\nwant\n%s", got, want)
	}
}

func TestTreeTextNilRoot(t *testing.T) {
	got := TreeText(nil, 3)
	if got != "rev 3\nroot \n" {
		t.Errorf("TreeText(nil) = %q", got)
	}
}

func TestTreeTextDeterministicProps(t *testing.T) {
	n := N("n", "text").Prop("b", "2").Prop("a", "1").Prop("c", "3")
	first := TreeText(n, 0)
	for i := 0; i < 10; i++ {
		if got := TreeText(n, 0); got != first {
			t.Fatal("TreeText output varies between calls")
		}
	}
	if !strings.Contains(first, "prop n a=1 b=2 c=3") {
		t.Errorf("props not sorted: %s", first)
	}
}

func TestMemState(t *testing.T) {
	s := NewMemState()
	s.Set("tab/active", "era")
	if got := s.Get("tab/active"); got != "era" {
		t.Errorf("Get = %q", got)
	}
	s.Del("tab/active")
	if got := s.Get("tab/active"); got != "" {
		t.Errorf("Get after Del = %q", got)
	}
}

func TestMemStateList(t *testing.T) {
	s := NewMemState()
	s.Set("items/a/title", "x")
	s.Set("items/a/done", "1")
	s.Set("items/b", "y")
	s.Set("other/c", "z")
	got := s.List("items")
	sort.Strings(got)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("List = %v", got)
	}
}

func TestMemStateGetIntBool(t *testing.T) {
	s := NewMemState()
	if got := s.GetInt("n", 42); got != 42 {
		t.Errorf("GetInt default = %d", got)
	}
	s.Set("n", "7")
	if got := s.GetInt("n", 0); got != 7 {
		t.Errorf("GetInt = %d", got)
	}
	s.Set("n", "seven")
	if got := s.GetInt("n", 9); got != 9 {
		t.Errorf("GetInt invalid = %d", got)
	}
	s.Set("f", "true")
	if !s.GetBool("f") {
		t.Error("GetBool(true) = false")
	}
	if s.GetBool("absent") {
		t.Error("GetBool(absent) = true")
	}
}
