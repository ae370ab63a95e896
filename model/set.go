package model

type Set[T comparable] map[T]struct{}

func NewSet[T comparable](items ...T) Set[T] {
	set := make(Set[T], len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}
