package domain

import "slices"

// DependencySet is the set of package names a resolution run has determined are needed.
// It only grows: there is no way to remove a member once added.
type DependencySet struct {
	members map[string]bool
}

// NewDependencySet creates a set seeded with the given root names.
// Empty names are ignored.
func NewDependencySet(seeds ...string) *DependencySet {
	s := &DependencySet{members: make(map[string]bool, len(seeds))}
	for _, name := range seeds {
		s.Add(name)
	}
	return s
}

// Add marks name as needed. It reports whether the name was not already a member.
func (s *DependencySet) Add(name string) bool {
	if name == "" || s.members[name] {
		return false
	}
	s.members[name] = true
	return true
}

// Has reports whether name is a member.
func (s *DependencySet) Has(name string) bool {
	return s.members[name]
}

// Len returns the number of members.
func (s *DependencySet) Len() int {
	return len(s.members)
}

// Names returns the members in lexical order.
func (s *DependencySet) Names() []string {
	names := make([]string, 0, len(s.members))
	for name := range s.members {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
