package user

import (
	"context"
	"strings"

	"github.com/JRaven13/shareit/model"
	"github.com/JRaven13/shareit/util/apperr"
)

// Repo is the storage surface the user service needs. Lookups return
// (nil, nil) when the record does not exist; writes that would duplicate an
// email return a Conflict error.
type Repo interface {
	Insert(ctx context.Context, u model.User) (model.User, error)
	Save(ctx context.Context, u model.User) error
	ByID(ctx context.Context, id int64) (*model.User, error)
	All(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	Create(ctx context.Context, name, email string) (model.User, error)
	// Update patches only the fields that are present and non-blank.
	Update(ctx context.Context, userID int64, name, email *string) (model.User, error)
	ByID(ctx context.Context, userID int64) (model.User, error)
	All(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, userID int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name, email string) (model.User, error) {
	return s.r.Insert(ctx, model.User{Name: name, Email: email})
}

func (s *service) Update(ctx context.Context, userID int64, name, email *string) (model.User, error) {
	u, err := s.r.ByID(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	if u == nil {
		return model.User{}, apperr.NotFound("user not found")
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		u.Name = *name
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		u.Email = *email
	}
	if err := s.r.Save(ctx, *u); err != nil {
		return model.User{}, err
	}
	return *u, nil
}

func (s *service) ByID(ctx context.Context, userID int64) (model.User, error) {
	u, err := s.r.ByID(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	if u == nil {
		return model.User{}, apperr.NotFound("user not found")
	}
	return *u, nil
}

func (s *service) All(ctx context.Context) ([]model.User, error) { return s.r.All(ctx) }

// Delete removes the user without checking for dependent items or bookings.
func (s *service) Delete(ctx context.Context, userID int64) error {
	return s.r.Delete(ctx, userID)
}
