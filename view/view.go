// Package view provides the Go API for building declarative UI
// component trees, plus the App and State interfaces shared by the
// demo applications.
//
// An application implements the App interface: View builds a node
// tree from the app's model, and Handle processes semantic actions.
// Apps own their domain model; State is for view-local flags only
// (active tab, expanded item) and never holds entity data.
package view

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/elizafairlady/go-appdemos/proto"
)

// Node is a UI view tree node with an ID, type, props, and children.
type Node struct {
	ID       string
	Type     string
	Props    map[string]string
	Children []*Node
}

// State is a hierarchical key-value store for view-local state.
type State interface {
	Get(path string) string
	Set(path, value string)
	Del(path string)
	List(dir string) []string
}

// App is the application interface. The host calls View to get the
// current UI tree, and Handle to process user actions.
type App interface {
	View() *Node
	Handle(a *proto.Action)
}

// --- Node builder helpers ---

// N creates a new node with the given id and type.
func N(id, typ string) *Node {
	return &Node{
		ID:    id,
		Type:  typ,
		Props: make(map[string]string),
	}
}

// Prop sets a property on the node and returns it for chaining.
func (n *Node) Prop(k, v string) *Node {
	n.Props[k] = v
	return n
}

// PropInt sets an integer property.
func (n *Node) PropInt(k string, v int) *Node {
	n.Props[k] = strconv.Itoa(v)
	return n
}

// Text sets the "text" property (convenience for text/button/etc).
func (n *Node) Text(s string) *Node {
	return n.Prop("text", s)
}

// Child appends child nodes and returns the parent for chaining.
func (n *Node) Child(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the descendant node with the given id, or nil.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if m := c.Find(id); m != nil {
			return m
		}
	}
	return nil
}

// --- Node types (convenience constructors) ---

// VBox creates a vertical box layout node.
func VBox(id string, children ...*Node) *Node {
	return N(id, "vbox").Child(children...)
}

// HBox creates a horizontal box layout node.
func HBox(id string, children ...*Node) *Node {
	return N(id, "hbox").Child(children...)
}

// TextNode creates a text display node.
func TextNode(id, text string) *Node {
	return N(id, "text").Text(text)
}

// Button creates a button node.
func Button(id, text string) *Node {
	return N(id, "button").Text(text).Prop("focusable", "1")
}

// Checkbox creates a checkbox node.
func Checkbox(id, text string, checked bool) *Node {
	v := "0"
	if checked {
		v = "1"
	}
	return N(id, "checkbox").Text(text).Prop("checked", v).Prop("focusable", "1")
}

// TextBox creates a text input node.
func TextBox(id string) *Node {
	return N(id, "textbox").Prop("focusable", "1")
}

// Image creates an image node referencing an asset by name.
func Image(id, src string) *Node {
	return N(id, "image").Prop("src", src)
}

// Row creates a semantic row container (for lists).
func Row(id string, children ...*Node) *Node {
	return N(id, "row").Child(children...)
}

// Spacer creates a flexible spacer.
func Spacer(id string) *Node {
	return N(id, "spacer").Prop("flex", "1")
}

// Modal creates an overlay surface node. At most one modal appears
// in a tree at a time; the surface controller enforces that.
func Modal(id string, children ...*Node) *Node {
	return N(id, "modal").Child(children...)
}

// Tab creates a tab header node.
func Tab(id, text string, active bool) *Node {
	v := "0"
	if active {
		v = "1"
	}
	return N(id, "tab").Text(text).Prop("active", v).Prop("focusable", "1")
}

// --- Tree text serialization ---

// TreeText renders the tree in a line-oriented, deterministic form:
//
//	rev <uint64>
//	root <nodeid>
//	node <id> <type>
//	prop <id> <k>=<v> ...
//	child <parent> <child>
//
// The demo shells print this after each action; tests diff it.
func TreeText(root *Node, rev uint64) string {
	var b strings.Builder
	b.WriteString("rev " + strconv.FormatUint(rev, 10) + "\n")
	if root == nil {
		b.WriteString("root \n")
		return b.String()
	}
	b.WriteString("root " + root.ID + "\n")
	var walk func(n *Node)
	walk = func(n *Node) {
		b.WriteString("node " + n.ID + " " + n.Type + "\n")
		if len(n.Props) > 0 {
			b.WriteString("prop " + n.ID)
			for _, k := range sortedPropKeys(n.Props) {
				b.WriteString(" " + k + "=" + proto.Escape(n.Props[k]))
			}
			b.WriteString("\n")
		}
		for _, c := range n.Children {
			b.WriteString("child " + n.ID + " " + c.ID + "\n")
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return b.String()
}

func sortedPropKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- In-memory State implementation ---

// MemState is a simple in-memory hierarchical state store.
type MemState struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemState creates a new empty in-memory state.
func NewMemState() *MemState {
	return &MemState{data: make(map[string]string)}
}

// Get returns the value at path, or "" if not set.
func (s *MemState) Get(path string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[path]
}

// Set sets the value at path.
func (s *MemState) Set(path, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = value
}

// Del deletes the value at path.
func (s *MemState) Del(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, path)
}

// List returns the direct children under dir.
// Keys are stored as "dir/child"; this returns the "child" parts.
func (s *MemState) List(dir string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefix := dir + "/"
	seen := make(map[string]bool)
	var result []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) && len(k) > len(prefix) {
			name := k[len(prefix):]
			if i := strings.IndexByte(name, '/'); i >= 0 {
				name = name[:i]
			}
			if !seen[name] {
				seen[name] = true
				result = append(result, name)
			}
		}
	}
	return result
}

// GetInt returns the integer value at path, or def if not set or invalid.
func (s *MemState) GetInt(path string, def int) int {
	v := s.Get(path)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetBool returns the boolean value at path (truthy: "1", "true").
func (s *MemState) GetBool(path string) bool {
	v := s.Get(path)
	return v == "1" || v == "true"
}
