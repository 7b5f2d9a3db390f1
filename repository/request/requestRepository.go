package request

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/JRaven13/shareit/model"
	"github.com/JRaven13/shareit/util/database"
)

type repo struct{ db *database.DB }

func New(db *database.DB) *repo { return &repo{db: db} }

func (r *repo) UserExists(ctx context.Context, userID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var ok bool
	err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&ok)
	return ok, err
}

func (r *repo) Insert(ctx context.Context, req model.ItemRequest) (model.ItemRequest, error) {
	const q = `
		INSERT INTO requests (description, requester_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.Pool.QueryRow(ctx, q, req.Description, req.RequesterID, req.Created).Scan(&req.ID)
	if err != nil {
		return model.ItemRequest{}, err
	}
	return req, nil
}

func (r *repo) ByRequester(ctx context.Context, requesterID int64) ([]model.ItemRequest, error) {
	const q = `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE requester_id = $1
		ORDER BY created DESC`
	return r.list(ctx, q, requesterID)
}

func (r *repo) AllOthers(ctx context.Context, userID int64, limit, offset int) ([]model.ItemRequest, error) {
	const q = `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE requester_id != $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3`
	return r.list(ctx, q, userID, limit, offset)
}

func (r *repo) ByID(ctx context.Context, requestID int64) (*model.ItemRequest, error) {
	const q = `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE id = $1`
	req := &model.ItemRequest{}
	err := r.db.Pool.QueryRow(ctx, q, requestID).Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *repo) ItemsByRequestIDs(ctx context.Context, requestIDs []int64) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE request_id = ANY($1)`
	rows, err := r.db.Pool.Query(ctx, q, requestIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.ItemRequest, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ItemRequest
	for rows.Next() {
		var req model.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
