package user

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JRaven13/shareit/model"
	"github.com/JRaven13/shareit/util/apperr"
	"github.com/JRaven13/shareit/util/database"
)

type repo struct{ db *database.DB }

func New(db *database.DB) *repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, u model.User) (model.User, error) {
	const q = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id`
	err := r.db.Pool.QueryRow(ctx, q, u.Name, u.Email).Scan(&u.ID)
	if err != nil {
		return model.User{}, classify(err)
	}
	return u, nil
}

func (r *repo) Save(ctx context.Context, u model.User) error {
	const q = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.Name, u.Email)
	return classify(err)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
		SELECT id, name, email
		FROM users
		WHERE id = $1`
	u := &model.User{}
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) All(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT id, name, email
		FROM users
		ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, q, id)
	return err
}

// classify surfaces the unique email index as a conflict the service tier
// can report; everything else passes through unchanged.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict("email already in use")
	}
	return err
}
