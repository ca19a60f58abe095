package profile

// IDSet is an insertion-ordered set of identifiers. It serializes as a
// plain JSON array.
type IDSet []string

// Has reports whether id is a member.
func (s IDSet) Has(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add inserts id unless already present. Returns true if inserted.
func (s *IDSet) Add(id string) bool {
	if s.Has(id) {
		return false
	}
	*s = append(*s, id)
	return true
}

// Remove deletes id. Returns true if it was present.
func (s *IDSet) Remove(id string) bool {
	for i, v := range *s {
		if v == id {
			*s = append((*s)[:i:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

// ContainsAll reports whether every id in ids is a member.
func (s IDSet) ContainsAll(ids []string) bool {
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// Len returns the number of members.
func (s IDSet) Len() int { return len(s) }

// Clone returns an independent copy. A nil set stays nil.
func (s IDSet) Clone() IDSet {
	if s == nil {
		return nil
	}
	c := make(IDSet, len(s))
	copy(c, s)
	return c
}
