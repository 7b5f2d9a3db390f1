package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/JRaven13/shareit/model"
)

type ItemRepo struct{ s *Store }

func (r *ItemRepo) UserExists(_ context.Context, userID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.userExists(userID), nil
}

func (r *ItemRepo) RequestExists(_ context.Context, requestID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.requests[requestID]
	return ok, nil
}

func (r *ItemRepo) Insert(_ context.Context, it model.Item) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextItem++
	it.ID = r.s.nextItem
	r.s.items[it.ID] = it
	return it, nil
}

func (r *ItemRepo) ByID(_ context.Context, itemID int64) (*model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.items[itemID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemRepo) ByIDAndOwner(_ context.Context, itemID, ownerID int64) (*model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.items[itemID]
	if !ok || it.OwnerID != ownerID {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemRepo) Save(_ context.Context, it model.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.items[it.ID] = it
	return nil
}

func (r *ItemRepo) ByOwner(_ context.Context, ownerID int64, limit, offset int) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []model.Item
	for _, it := range r.s.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *ItemRepo) Search(_ context.Context, text string, limit, offset int) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []model.Item
	for _, it := range r.s.items {
		if !it.Available {
			continue
		}
		if strings.Contains(strings.ToLower(it.Name), text) ||
			strings.Contains(strings.ToLower(it.Description), text) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *ItemRepo) ItemsByRequestIDs(_ context.Context, requestIDs []int64) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.itemsByRequestIDs(requestIDs), nil
}

func (r *ItemRepo) ApprovedStartedByItems(_ context.Context, itemIDs []int64, now time.Time) ([]model.Booking, error) {
	return r.approvedByItems(itemIDs, func(b model.Booking) bool { return !b.Start.After(now) })
}

func (r *ItemRepo) ApprovedUpcomingByItems(_ context.Context, itemIDs []int64, now time.Time) ([]model.Booking, error) {
	return r.approvedByItems(itemIDs, func(b model.Booking) bool { return b.Start.After(now) })
}

func (r *ItemRepo) approvedByItems(itemIDs []int64, keep func(model.Booking) bool) ([]model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wanted := idSet(itemIDs)
	var out []model.Booking
	for _, b := range r.s.bookings {
		if b.Status == model.StatusApproved && wanted[b.ItemID] && keep(b) {
			out = append(out, b)
		}
	}
	sortByStartDesc(out)
	return out, nil
}

func (r *ItemRepo) CommentsByItems(_ context.Context, itemIDs []int64) ([]model.CommentDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wanted := idSet(itemIDs)
	var out []model.CommentDetail
	for _, c := range r.s.comments {
		if wanted[c.ItemID] {
			out = append(out, model.CommentDetail{
				Comment:    c,
				AuthorName: r.s.users[c.AuthorID].Name,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })
	return out, nil
}

func (r *ItemRepo) HasFinishedBooking(_ context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.bookings {
		if b.ItemID == itemID && b.BookerID == bookerID &&
			b.Status == model.StatusApproved && b.End.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

func (r *ItemRepo) InsertComment(_ context.Context, c model.Comment) (*model.CommentDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextComment++
	c.ID = r.s.nextComment
	r.s.comments[c.ID] = c
	return &model.CommentDetail{Comment: c, AuthorName: r.s.users[c.AuthorID].Name}, nil
}

func idSet(ids []int64) map[int64]bool {
	m := make(map[int64]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
