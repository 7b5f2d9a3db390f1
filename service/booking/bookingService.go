package booking

import (
	"context"
	"time"

	"github.com/JRaven13/shareit/model"
	"github.com/JRaven13/shareit/util/apperr"
	"github.com/JRaven13/shareit/util/paging"
)

// Repo exposes one query per listing filter so the service dispatches on a
// closed set instead of assembling predicates. All listing queries order by
// start descending. Lookups return (nil, nil) when the record is absent.
type Repo interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	ItemByID(ctx context.Context, itemID int64) (*model.Item, error)
	OwnerHasItems(ctx context.Context, ownerID int64) (bool, error)

	Insert(ctx context.Context, b model.Booking) (*model.BookingDetail, error)
	ByID(ctx context.Context, bookingID int64) (*model.BookingDetail, error)
	SetStatus(ctx context.Context, bookingID int64, status model.BookingStatus) error

	AllByBooker(ctx context.Context, bookerID int64, limit, offset int) ([]model.BookingDetail, error)
	ByBookerAndStatus(ctx context.Context, bookerID int64, status model.BookingStatus, limit, offset int) ([]model.BookingDetail, error)
	PastByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error)
	FutureByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error)
	CurrentByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error)

	AllForOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.BookingDetail, error)
	ForOwnerAndStatus(ctx context.Context, ownerID int64, status model.BookingStatus, limit, offset int) ([]model.BookingDetail, error)
	PastForOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error)
	FutureForOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error)
	CurrentForOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error)
}

type CreateInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type Service interface {
	Create(ctx context.Context, userID int64, in CreateInput) (*model.BookingDetail, error)
	Approve(ctx context.Context, userID, bookingID int64, approved bool) (*model.BookingDetail, error)
	ByID(ctx context.Context, userID, bookingID int64) (*model.BookingDetail, error)
	AllByBooker(ctx context.Context, userID int64, state State, from, size int) ([]model.BookingDetail, error)
	AllForOwner(ctx context.Context, ownerID int64, state State, from, size int) ([]model.BookingDetail, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// Create inserts a WAITING booking. Overlapping bookings for the same item
// are not rejected; availability is the only item-side gate.
func (s *service) Create(ctx context.Context, userID int64, in CreateInput) (*model.BookingDetail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	item, err := s.r.ItemByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("item not found")
	}
	if !item.Available {
		return nil, apperr.Validation("item is not available for booking")
	}
	if item.OwnerID == userID {
		return nil, apperr.NotFound("you cannot book your own item")
	}
	return s.r.Insert(ctx, model.Booking{
		ItemID:   in.ItemID,
		BookerID: userID,
		Start:    in.Start,
		End:      in.End,
		Status:   model.StatusWaiting,
	})
}

func (s *service) Approve(ctx context.Context, userID, bookingID int64, approved bool) (*model.BookingDetail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	b, err := s.r.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NotFound("booking not found")
	}
	if b.Item.OwnerID != userID {
		return nil, apperr.NotFound("you cannot approve a booking of another owner's item")
	}
	// Only the APPROVED state is terminal here: a REJECTED booking can be
	// approved again.
	if b.Status == model.StatusApproved {
		return nil, apperr.Validation("booking is already approved")
	}
	status := model.StatusRejected
	if approved {
		status = model.StatusApproved
	}
	if err := s.r.SetStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

func (s *service) ByID(ctx context.Context, userID, bookingID int64) (*model.BookingDetail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	b, err := s.r.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NotFound("booking not found")
	}
	if !isBooker(b, userID) && !isOwner(b, userID) {
		return nil, apperr.NotFound("only the booker or the item owner may view a booking")
	}
	return b, nil
}

func (s *service) AllByBooker(ctx context.Context, userID int64, state State, from, size int) ([]model.BookingDetail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	offset := paging.Offset(from, size)
	now := time.Now()
	switch state {
	case StateAll:
		return s.r.AllByBooker(ctx, userID, size, offset)
	case StateWaiting, StateApproved, StateRejected, StateCanceled:
		return s.r.ByBookerAndStatus(ctx, userID, model.BookingStatus(state), size, offset)
	case StatePast:
		return s.r.PastByBooker(ctx, userID, now, size, offset)
	case StateFuture:
		return s.r.FutureByBooker(ctx, userID, now, size, offset)
	case StateCurrent:
		return s.r.CurrentByBooker(ctx, userID, now, size, offset)
	default:
		return nil, apperr.Validation("Unknown state: %s", state)
	}
}

func (s *service) AllForOwner(ctx context.Context, ownerID int64, state State, from, size int) ([]model.BookingDetail, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	// An owner with no items has no bookings to list, whatever the state.
	has, err := s.r.OwnerHasItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !has {
		return []model.BookingDetail{}, nil
	}
	offset := paging.Offset(from, size)
	now := time.Now()
	switch state {
	case StateAll:
		return s.r.AllForOwner(ctx, ownerID, size, offset)
	case StateWaiting, StateApproved, StateRejected, StateCanceled:
		return s.r.ForOwnerAndStatus(ctx, ownerID, model.BookingStatus(state), size, offset)
	case StatePast:
		return s.r.PastForOwner(ctx, ownerID, now, size, offset)
	case StateFuture:
		return s.r.FutureForOwner(ctx, ownerID, now, size, offset)
	case StateCurrent:
		return s.r.CurrentForOwner(ctx, ownerID, now, size, offset)
	default:
		return nil, apperr.Validation("Unknown state: %s", state)
	}
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

func isBooker(b *model.BookingDetail, userID int64) bool { return b.BookerID == userID }
func isOwner(b *model.BookingDetail, userID int64) bool  { return b.Item.OwnerID == userID }
