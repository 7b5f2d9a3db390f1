package memory

import (
	"context"
	"time"

	"github.com/JRaven13/shareit/model"
)

type BookingRepo struct{ s *Store }

func (r *BookingRepo) UserExists(_ context.Context, userID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.userExists(userID), nil
}

func (r *BookingRepo) ItemByID(_ context.Context, itemID int64) (*model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.items[itemID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *BookingRepo) OwnerHasItems(_ context.Context, ownerID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, it := range r.s.items {
		if it.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepo) Insert(_ context.Context, b model.Booking) (*model.BookingDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextBooking++
	b.ID = r.s.nextBooking
	r.s.bookings[b.ID] = b
	d := r.s.detail(b)
	return &d, nil
}

func (r *BookingRepo) ByID(_ context.Context, bookingID int64) (*model.BookingDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	d := r.s.detail(b)
	return &d, nil
}

func (r *BookingRepo) SetStatus(_ context.Context, bookingID int64, status model.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return nil
	}
	b.Status = status
	r.s.bookings[bookingID] = b
	return nil
}

func (r *BookingRepo) AllByBooker(_ context.Context, bookerID int64, limit, offset int) ([]model.BookingDetail, error) {
	return r.byBooker(bookerID, limit, offset, nil)
}

func (r *BookingRepo) ByBookerAndStatus(_ context.Context, bookerID int64, status model.BookingStatus, limit, offset int) ([]model.BookingDetail, error) {
	return r.byBooker(bookerID, limit, offset, func(b model.Booking) bool { return b.Status == status })
}

func (r *BookingRepo) PastByBooker(_ context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	return r.byBooker(bookerID, limit, offset, func(b model.Booking) bool { return b.End.Before(now) })
}

func (r *BookingRepo) FutureByBooker(_ context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	return r.byBooker(bookerID, limit, offset, func(b model.Booking) bool { return b.Start.After(now) })
}

func (r *BookingRepo) CurrentByBooker(_ context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	return r.byBooker(bookerID, limit, offset, func(b model.Booking) bool {
		return b.Start.Before(now) && b.End.After(now)
	})
}

func (r *BookingRepo) AllForOwner(_ context.Context, ownerID int64, limit, offset int) ([]model.BookingDetail, error) {
	return r.forOwner(ownerID, limit, offset, nil)
}

func (r *BookingRepo) ForOwnerAndStatus(_ context.Context, ownerID int64, status model.BookingStatus, limit, offset int) ([]model.BookingDetail, error) {
	return r.forOwner(ownerID, limit, offset, func(b model.Booking) bool { return b.Status == status })
}

func (r *BookingRepo) PastForOwner(_ context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	return r.forOwner(ownerID, limit, offset, func(b model.Booking) bool { return b.End.Before(now) })
}

func (r *BookingRepo) FutureForOwner(_ context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	return r.forOwner(ownerID, limit, offset, func(b model.Booking) bool { return b.Start.After(now) })
}

func (r *BookingRepo) CurrentForOwner(_ context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	return r.forOwner(ownerID, limit, offset, func(b model.Booking) bool {
		return b.Start.Before(now) && b.End.After(now)
	})
}

func (r *BookingRepo) byBooker(bookerID int64, limit, offset int, keep func(model.Booking) bool) ([]model.BookingDetail, error) {
	return r.filtered(limit, offset, func(b model.Booking) bool {
		return b.BookerID == bookerID && (keep == nil || keep(b))
	})
}

func (r *BookingRepo) forOwner(ownerID int64, limit, offset int, keep func(model.Booking) bool) ([]model.BookingDetail, error) {
	r.s.mu.Lock()
	owned := make(map[int64]bool)
	for _, it := range r.s.items {
		if it.OwnerID == ownerID {
			owned[it.ID] = true
		}
	}
	r.s.mu.Unlock()

	return r.filtered(limit, offset, func(b model.Booking) bool {
		return owned[b.ItemID] && (keep == nil || keep(b))
	})
}

func (r *BookingRepo) filtered(limit, offset int, keep func(model.Booking) bool) ([]model.BookingDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []model.Booking
	for _, b := range r.s.bookings {
		if keep(b) {
			matched = append(matched, b)
		}
	}
	sortByStartDesc(matched)
	matched = page(matched, limit, offset)

	out := make([]model.BookingDetail, 0, len(matched))
	for _, b := range matched {
		out = append(out, r.s.detail(b))
	}
	return out, nil
}
