package entity

import (
	"reflect"
	"testing"
)

func TestToggleCreatesBucket(t *testing.T) {
	var r Reactions
	r = r.Toggle("🔥", "mona")
	if len(r) != 1 {
		t.Fatalf("buckets = %d, want 1", len(r))
	}
	if r[0].Emoji != "🔥" || !reflect.DeepEqual(r[0].Users, []string{"mona"}) {
		t.Errorf("bucket = %+v", r[0])
	}
}

func TestTogglePairRestoresState(t *testing.T) {
	r := Reactions{
		{Emoji: "❤️", Users: []string{"liv", "theo"}},
		{Emoji: "🔥", Users: []string{"liv"}},
	}
	got := r.Toggle("❤️", "mona").Toggle("❤️", "mona")
	if !reflect.DeepEqual(got, r) {
		t.Errorf("double toggle = %+v, want %+v", got, r)
	}

	// same for a toggle-off pair starting from membership
	got = r.Toggle("🔥", "liv").Toggle("🔥", "liv")
	if !reflect.DeepEqual(got, r) {
		t.Errorf("double toggle off = %+v, want %+v", got, r)
	}
}

func TestToggleNeverDuplicatesUser(t *testing.T) {
	var r Reactions
	r = r.Toggle("👍", "mona")
	r = r.Toggle("👍", "liv")
	r = r.Toggle("👍", "mona") // off
	r = r.Toggle("👍", "mona") // on again
	if n := r.Count("👍"); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	seen := make(map[string]int)
	for _, u := range r[0].Users {
		seen[u]++
		if seen[u] > 1 {
			t.Errorf("user %s appears %d times", u, seen[u])
		}
	}
}

func TestToggleOffPrunesEmptyBucket(t *testing.T) {
	r := Reactions{{Emoji: "🔥", Users: []string{"mona"}}}
	r = r.Toggle("🔥", "mona")
	if len(r) != 0 {
		t.Errorf("buckets = %+v, want none", r)
	}
	if r.Count("🔥") != 0 {
		t.Errorf("count = %d, want 0", r.Count("🔥"))
	}
}

func TestToggleLeavesInputUnchanged(t *testing.T) {
	r := Reactions{{Emoji: "🔥", Users: []string{"mona"}}}
	_ = r.Toggle("🔥", "liv")
	if len(r[0].Users) != 1 {
		t.Errorf("input mutated: %+v", r[0].Users)
	}
}

func TestHasAndTotal(t *testing.T) {
	r := Reactions{
		{Emoji: "❤️", Users: []string{"liv", "theo"}},
		{Emoji: "🔥", Users: []string{"liv"}},
	}
	if !r.Has("❤️", "theo") {
		t.Error("Has(❤️, theo) = false")
	}
	if r.Has("🔥", "theo") {
		t.Error("Has(🔥, theo) = true")
	}
	if r.Total() != 3 {
		t.Errorf("total = %d, want 3", r.Total())
	}
}
