package entity

import "sort"

// IDSet is a set of entity IDs associated with a user, used for
// favorites, downloads, likes, and wishlist membership. The zero
// value is not usable; call NewIDSet.
type IDSet map[string]struct{}

// NewIDSet creates a set holding the given IDs. Duplicates collapse.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is a member.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s IDSet) Len() int { return len(s) }

// Toggle returns the set after symmetric-difference with {id}, and
// whether id is now a member. The receiver is not modified, so a
// double toggle yields a set equal to the original.
func (s IDSet) Toggle(id string) (IDSet, bool) {
	out := make(IDSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	if _, ok := out[id]; ok {
		delete(out, id)
		return out, false
	}
	out[id] = struct{}{}
	return out, true
}

// IDs returns the members in sorted order (for persistence and tests).
func (s IDSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
