package item

import (
	"context"
	"strings"
	"time"

	"github.com/JRaven13/shareit/model"
	"github.com/JRaven13/shareit/util/apperr"
	"github.com/JRaven13/shareit/util/paging"
)

// Repo is the storage surface for items and their comments. The booking
// queries take item id slices so listings can be annotated from one query
// per concern instead of one per item. Lookups return (nil, nil) when the
// record is absent.
type Repo interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	RequestExists(ctx context.Context, requestID int64) (bool, error)

	Insert(ctx context.Context, it model.Item) (model.Item, error)
	ByID(ctx context.Context, itemID int64) (*model.Item, error)
	ByIDAndOwner(ctx context.Context, itemID, ownerID int64) (*model.Item, error)
	Save(ctx context.Context, it model.Item) error
	ByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error)

	// ApprovedStartedByItems returns APPROVED bookings with start <= now,
	// ApprovedUpcomingByItems those with start > now.
	ApprovedStartedByItems(ctx context.Context, itemIDs []int64, now time.Time) ([]model.Booking, error)
	ApprovedUpcomingByItems(ctx context.Context, itemIDs []int64, now time.Time) ([]model.Booking, error)

	CommentsByItems(ctx context.Context, itemIDs []int64) ([]model.CommentDetail, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
	InsertComment(ctx context.Context, c model.Comment) (*model.CommentDetail, error)
}

type CreateInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateInput carries patch semantics: nil means leave unchanged, and the
// string fields are additionally ignored when blank.
type UpdateInput struct {
	Name        *string
	Description *string
	Available   *bool
}

// BookingSummary is the last/next booking annotation on an item.
type BookingSummary struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type Detail struct {
	model.Item
	LastBooking *BookingSummary       `json:"lastBooking"`
	NextBooking *BookingSummary       `json:"nextBooking"`
	Comments    []model.CommentDetail `json:"comments"`
}

type Service interface {
	Create(ctx context.Context, userID int64, in CreateInput) (model.Item, error)
	Update(ctx context.Context, userID, itemID int64, in UpdateInput) (model.Item, error)
	ByItemID(ctx context.Context, userID, itemID int64) (*Detail, error)
	AllByUser(ctx context.Context, userID int64, from, size int) ([]Detail, error)
	Search(ctx context.Context, userID int64, text string, from, size int) ([]model.Item, error)
	CreateComment(ctx context.Context, userID, itemID int64, text string) (*model.CommentDetail, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, userID int64, in CreateInput) (model.Item, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return model.Item{}, err
	}
	if in.RequestID != nil {
		ok, err := s.r.RequestExists(ctx, *in.RequestID)
		if err != nil {
			return model.Item{}, err
		}
		if !ok {
			return model.Item{}, apperr.NotFound("request not found")
		}
	}
	return s.r.Insert(ctx, model.Item{
		OwnerID:     userID,
		Name:        in.Name,
		Description: in.Description,
		Available:   in.Available,
		RequestID:   in.RequestID,
	})
}

func (s *service) Update(ctx context.Context, userID, itemID int64, in UpdateInput) (model.Item, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return model.Item{}, err
	}
	// Single lookup with both predicates: a non-owner sees the same "not
	// found" as a missing item.
	it, err := s.r.ByIDAndOwner(ctx, itemID, userID)
	if err != nil {
		return model.Item{}, err
	}
	if it == nil {
		return model.Item{}, apperr.NotFound("item not found")
	}
	if in.Available != nil {
		it.Available = *in.Available
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		it.Name = *in.Name
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) != "" {
		it.Description = *in.Description
	}
	if err := s.r.Save(ctx, *it); err != nil {
		return model.Item{}, err
	}
	return *it, nil
}

func (s *service) ByItemID(ctx context.Context, userID, itemID int64) (*Detail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.r.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.NotFound("item not found")
	}
	comments, err := s.r.CommentsByItems(ctx, []int64{itemID})
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.CommentDetail{}
	}
	d := &Detail{Item: *it, Comments: comments}
	if it.OwnerID != userID {
		return d, nil
	}
	now := time.Now()
	started, err := s.r.ApprovedStartedByItems(ctx, []int64{itemID}, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.r.ApprovedUpcomingByItems(ctx, []int64{itemID}, now)
	if err != nil {
		return nil, err
	}
	d.LastBooking = lastOf(started)
	d.NextBooking = nextOf(upcoming)
	return d, nil
}

func (s *service) AllByUser(ctx context.Context, userID int64, from, size int) ([]Detail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	items, err := s.r.ByOwner(ctx, userID, size, paging.Offset(from, size))
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	now := time.Now()
	started, err := s.r.ApprovedStartedByItems(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.r.ApprovedUpcomingByItems(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	comments, err := s.r.CommentsByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	startedByItem := groupByItem(started)
	upcomingByItem := groupByItem(upcoming)
	commentsByItem := make(map[int64][]model.CommentDetail)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	out := make([]Detail, 0, len(items))
	for _, it := range items {
		cs := commentsByItem[it.ID]
		if cs == nil {
			cs = []model.CommentDetail{}
		}
		out = append(out, Detail{
			Item:        it,
			LastBooking: lastOf(startedByItem[it.ID]),
			NextBooking: nextOf(upcomingByItem[it.ID]),
			Comments:    cs,
		})
	}
	return out, nil
}

func (s *service) Search(ctx context.Context, userID int64, text string, from, size int) ([]model.Item, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	return s.r.Search(ctx, strings.ToLower(text), size, paging.Offset(from, size))
}

func (s *service) CreateComment(ctx context.Context, userID, itemID int64, text string) (*model.CommentDetail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.r.ByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.NotFound("item not found")
	}
	ok, err := s.r.HasFinishedBooking(ctx, itemID, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Validation("only a user who completed a rental may comment on the item")
	}
	return s.r.InsertComment(ctx, model.Comment{
		ItemID:   itemID,
		AuthorID: userID,
		Text:     text,
		Created:  time.Now(),
	})
}

func (s *service) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.r.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user not found")
	}
	return nil
}

func groupByItem(bs []model.Booking) map[int64][]model.Booking {
	m := make(map[int64][]model.Booking)
	for _, b := range bs {
		m[b.ItemID] = append(m[b.ItemID], b)
	}
	return m
}

// lastOf picks the booking with the greatest end among started bookings.
func lastOf(bs []model.Booking) *BookingSummary {
	var pick *model.Booking
	for i := range bs {
		if pick == nil || bs[i].End.After(pick.End) {
			pick = &bs[i]
		}
	}
	return summarize(pick)
}

// nextOf picks the booking with the smallest start among upcoming bookings.
func nextOf(bs []model.Booking) *BookingSummary {
	var pick *model.Booking
	for i := range bs {
		if pick == nil || bs[i].Start.Before(pick.Start) {
			pick = &bs[i]
		}
	}
	return summarize(pick)
}

func summarize(b *model.Booking) *BookingSummary {
	if b == nil {
		return nil
	}
	return &BookingSummary{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}
