package memory

import (
	"context"
	"sort"

	"github.com/JRaven13/shareit/model"
	"github.com/JRaven13/shareit/util/apperr"
)

type UserRepo struct{ s *Store }

func (r *UserRepo) Insert(_ context.Context, u model.User) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(u.Email, 0) {
		return model.User{}, apperr.Conflict("email already in use")
	}
	r.s.nextUser++
	u.ID = r.s.nextUser
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepo) Save(_ context.Context, u model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(u.Email, u.ID) {
		return apperr.Conflict("email already in use")
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *UserRepo) ByID(_ context.Context, id int64) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) All(_ context.Context) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.users, id)
	return nil
}

// callers must hold the store lock
func (r *UserRepo) emailTaken(email string, exceptID int64) bool {
	for _, u := range r.s.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}
