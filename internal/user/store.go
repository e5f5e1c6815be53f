package user

import "sync"

// Store is a concurrency-safe in-memory collection of User records. Records
// are kept in insertion order and looked up by linear scan; there is no index
// by ID. Duplicate IDs are not rejected, and every lookup returns the first
// match in order.
type Store struct {
	mu    sync.RWMutex
	users []*User
}

// NewStore returns an initialized empty Store.
func NewStore() *Store {
	return &Store{users: make([]*User, 0)}
}

// Find returns the first record whose ID matches, or false if none does.
// The returned pointer aliases the stored record; it is not a copy.
func (s *Store) Find(id int64) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// List returns a snapshot of the collection in insertion order. The slice is
// fresh but its elements alias the stored records.
func (s *Store) List() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*User, len(s.users))
	copy(out, s.users)
	return out
}

// Create appends u unconditionally and returns it. IDs are caller-assigned;
// no duplicate check is made.
func (s *Store) Create(u *User) *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, u)
	return u
}

// Update rewrites the non-nil fields of upd on the first record matching id,
// in place, and returns the mutated record. It returns false and mutates
// nothing when no record matches.
func (s *Store) Update(id int64, upd Updates) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID != id {
			continue
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		return u, true
	}
	return nil, false
}

// Delete removes the first record matching id and reports whether a record
// was removed. The sequence is left untouched when no record matches.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
