package wishlist

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Set is an insertion-ordered set of product ids. Mutations return a new Set.
type Set struct {
	ids []string
}

func NewSet(ids ...string) Set {
	var s Set
	for _, id := range ids {
		s = s.Add(id)
	}
	return s
}

func (s Set) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s Set) Add(id string) Set {
	if id == "" || s.Contains(id) {
		return s
	}
	ids := make([]string, len(s.ids), len(s.ids)+1)
	copy(ids, s.ids)
	return Set{ids: append(ids, id)}
}

func (s Set) Remove(id string) Set {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return s
	}
	return Set{ids: slices.Delete(slices.Clone(s.ids), i, i+1)}
}

// Toggle removes id when present and adds it otherwise.
func (s Set) Toggle(id string) Set {
	if s.Contains(id) {
		return s.Remove(id)
	}
	return s.Add(id)
}

func (s Set) Len() int { return len(s.ids) }

func (s Set) IDs() []string { return slices.Clone(s.ids) }

// Equal compares membership only.
func (s Set) Equal(o Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, id := range s.ids {
		if !o.Contains(id) {
			return false
		}
	}
	return true
}

// Encode renders the set as a JSON array of ids.
func Encode(s Set) (string, error) {
	ids := s.ids
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Decode(data string) (Set, error) {
	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return Set{}, fmt.Errorf("decode wishlist: %w", err)
	}
	return NewSet(ids...), nil
}
