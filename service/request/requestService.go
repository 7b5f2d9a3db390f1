package request

import (
	"context"
	"time"

	"github.com/JRaven13/shareit/model"
	"github.com/JRaven13/shareit/util/apperr"
	"github.com/JRaven13/shareit/util/paging"
)

// Repo surfaces request storage plus the item lookup used to annotate
// requests with the items that fulfil them. Lookups return (nil, nil) when
// the record is absent.
type Repo interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	Insert(ctx context.Context, r model.ItemRequest) (model.ItemRequest, error)
	ByRequester(ctx context.Context, requesterID int64) ([]model.ItemRequest, error)
	// AllOthers lists requests not created by userID, newest created first.
	AllOthers(ctx context.Context, userID int64, limit, offset int) ([]model.ItemRequest, error)
	ByID(ctx context.Context, requestID int64) (*model.ItemRequest, error)
	ItemsByRequestIDs(ctx context.Context, requestIDs []int64) ([]model.Item, error)
}

type Detail struct {
	model.ItemRequest
	Items []model.Item `json:"items"`
}

type Service interface {
	Create(ctx context.Context, userID int64, description string) (model.ItemRequest, error)
	AllByUser(ctx context.Context, userID int64) ([]Detail, error)
	All(ctx context.Context, userID int64, from, size int) ([]Detail, error)
	ByID(ctx context.Context, userID, requestID int64) (*Detail, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, userID int64, description string) (model.ItemRequest, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return model.ItemRequest{}, err
	}
	return s.r.Insert(ctx, model.ItemRequest{
		Description: description,
		RequesterID: userID,
		Created:     time.Now(),
	})
}

func (s *service) AllByUser(ctx context.Context, userID int64) ([]Detail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.r.ByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, requests)
}

func (s *service) All(ctx context.Context, userID int64, from, size int) ([]Detail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.r.AllOthers(ctx, userID, size, paging.Offset(from, size))
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, requests)
}

func (s *service) ByID(ctx context.Context, userID, requestID int64) (*Detail, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.r.ByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperr.NotFound("request not found")
	}
	details, err := s.annotate(ctx, []model.ItemRequest{*req})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// annotate attaches to each request the items that reference it. Items
// without a request link are skipped.
func (s *service) annotate(ctx context.Context, requests []model.ItemRequest) ([]Detail, error) {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	items, err := s.r.ItemsByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]model.Item)
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
	}
	out := make([]Detail, 0, len(requests))
	for _, r := range requests {
		linked := byRequest[r.ID]
		if linked == nil {
			linked = []model.Item{}
		}
		out = append(out, Detail{ItemRequest: r, Items: linked})
	}
	return out, nil
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
