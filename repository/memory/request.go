package memory

import (
	"context"
	"sort"

	"github.com/JRaven13/shareit/model"
)

type RequestRepo struct{ s *Store }

func (r *RequestRepo) UserExists(_ context.Context, userID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.userExists(userID), nil
}

func (r *RequestRepo) Insert(_ context.Context, req model.ItemRequest) (model.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextRequest++
	req.ID = r.s.nextRequest
	r.s.requests[req.ID] = req
	return req, nil
}

func (r *RequestRepo) ByRequester(_ context.Context, requesterID int64) ([]model.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []model.ItemRequest
	for _, req := range r.s.requests {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *RequestRepo) AllOthers(_ context.Context, userID int64, limit, offset int) ([]model.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []model.ItemRequest
	for _, req := range r.s.requests {
		if req.RequesterID != userID {
			out = append(out, req)
		}
	}
	sortByCreatedDesc(out)
	return page(out, limit, offset), nil
}

func (r *RequestRepo) ByID(_ context.Context, requestID int64) (*model.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[requestID]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r *RequestRepo) ItemsByRequestIDs(_ context.Context, requestIDs []int64) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.itemsByRequestIDs(requestIDs), nil
}

func sortByCreatedDesc(reqs []model.ItemRequest) {
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].Created.After(reqs[j].Created) })
}
