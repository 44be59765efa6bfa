package ident

import "strconv"

// Namespace is a set of identifiers already declared in one scope.
type Namespace map[string]struct{}

// NewNamespace creates a namespace holding the given names.
func NewNamespace(names ...string) Namespace {
	ns := make(Namespace, len(names))
	for _, n := range names {
		ns[n] = struct{}{}
	}

	return ns
}

// Has reports whether name is taken.
func (ns Namespace) Has(name string) bool {
	_, ok := ns[name]
	return ok
}

// Reserve returns name if it is free, otherwise the first free name of the form name1, name2, ...
// The returned name is marked as taken.
func (ns Namespace) Reserve(name string) string {
	if !ns.Has(name) {
		ns[name] = struct{}{}
		return name
	}

	return NewStem(name, ns).Next()
}

// NewStem creates a new Stem instance with the provided stem and namespace.
// The nil namespace is treated as a free namespace, meaning all names are available.
func NewStem(stem string, namespace Namespace) *Stem {
	return &Stem{
		taken: namespace,
		stem:  stem,
		last:  0,
	}
}

type Stem struct {
	taken Namespace
	stem  string
	last  int
}

func (s *Stem) Next() string {
	if s.taken == nil {
		s.taken = make(Namespace)
	}

	for {
		s.last++
		name := s.stem + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
