// Package memory is the process-local storage variant: every table is a
// map guarded by one mutex, ids are handed out monotonically, and nothing
// survives a restart. The server selects it when no database is configured.
package memory

import (
	"sort"
	"sync"

	"github.com/JRaven13/shareit/model"
)

type Store struct {
	mu sync.Mutex

	users    map[int64]model.User
	items    map[int64]model.Item
	bookings map[int64]model.Booking
	requests map[int64]model.ItemRequest
	comments map[int64]model.Comment

	nextUser    int64
	nextItem    int64
	nextBooking int64
	nextRequest int64
	nextComment int64
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int64]model.User),
		items:    make(map[int64]model.Item),
		bookings: make(map[int64]model.Booking),
		requests: make(map[int64]model.ItemRequest),
		comments: make(map[int64]model.Comment),
	}
}

// The per-domain views satisfy the service repository interfaces while
// sharing the one dataset and lock.

func (s *Store) Users() *UserRepo       { return &UserRepo{s: s} }
func (s *Store) Items() *ItemRepo       { return &ItemRepo{s: s} }
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }
func (s *Store) Requests() *RequestRepo { return &RequestRepo{s: s} }

// callers must hold s.mu
func (s *Store) userExists(userID int64) bool {
	_, ok := s.users[userID]
	return ok
}

// callers must hold s.mu
func (s *Store) detail(b model.Booking) model.BookingDetail {
	return model.BookingDetail{
		Booking: b,
		Item:    s.items[b.ItemID],
		Booker:  s.users[b.BookerID],
	}
}

// callers must hold s.mu
func (s *Store) itemsByRequestIDs(requestIDs []int64) []model.Item {
	wanted := make(map[int64]bool, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = true
	}
	var out []model.Item
	for _, it := range s.items {
		if it.RequestID != nil && wanted[*it.RequestID] {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortByStartDesc(bs []model.Booking) {
	sort.Slice(bs, func(i, j int) bool { return bs[i].Start.After(bs[j].Start) })
}

// page applies limit/offset the way the SQL queries do.
func page[T any](xs []T, limit, offset int) []T {
	if offset >= len(xs) {
		return []T{}
	}
	xs = xs[offset:]
	if limit < len(xs) {
		xs = xs[:limit]
	}
	return xs
}
