package item

import (
	"context"
	"errors"
	"time"

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

func (r *repo) RequestExists(ctx context.Context, requestID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`
	var ok bool
	err := r.db.Pool.QueryRow(ctx, q, requestID).Scan(&ok)
	return ok, err
}

func (r *repo) Insert(ctx context.Context, it model.Item) (model.Item, error) {
	const q = `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.db.Pool.QueryRow(ctx, q, it.Name, it.Description, it.Available, it.OwnerID, it.RequestID).Scan(&it.ID)
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}

func (r *repo) ByID(ctx context.Context, itemID int64) (*model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`
	return r.one(ctx, q, itemID)
}

func (r *repo) ByIDAndOwner(ctx context.Context, itemID, ownerID int64) (*model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1 AND owner_id = $2`
	return r.one(ctx, q, itemID, ownerID)
}

func (r *repo) one(ctx context.Context, q string, args ...any) (*model.Item, error) {
	it := &model.Item{}
	err := r.db.Pool.QueryRow(ctx, q, args...).
		Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repo) Save(ctx context.Context, it model.Item) error {
	const q = `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, q, it.ID, it.Name, it.Description, it.Available)
	return err
}

func (r *repo) ByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`
	return r.list(ctx, q, ownerID, limit, offset)
}

func (r *repo) Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE (lower(name) LIKE '%' || $1 || '%' OR lower(description) LIKE '%' || $1 || '%')
		  AND available = true
		ORDER BY id
		LIMIT $2 OFFSET $3`
	return r.list(ctx, q, text, limit, offset)
}

func (r *repo) ItemsByRequestIDs(ctx context.Context, requestIDs []int64) ([]model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE request_id = ANY($1)`
	return r.list(ctx, q, requestIDs)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.Item, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
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

func (r *repo) ApprovedStartedByItems(ctx context.Context, itemIDs []int64, now time.Time) ([]model.Booking, error) {
	const q = `
		SELECT id, item_id, booker_id, start_date, end_date, status
		FROM bookings
		WHERE item_id = ANY($1) AND start_date <= $2 AND status = 'APPROVED'
		ORDER BY start_date DESC`
	return r.bookings(ctx, q, itemIDs, now)
}

func (r *repo) ApprovedUpcomingByItems(ctx context.Context, itemIDs []int64, now time.Time) ([]model.Booking, error) {
	const q = `
		SELECT id, item_id, booker_id, start_date, end_date, status
		FROM bookings
		WHERE item_id = ANY($1) AND start_date > $2 AND status = 'APPROVED'
		ORDER BY start_date DESC`
	return r.bookings(ctx, q, itemIDs, now)
}

func (r *repo) bookings(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &b.Status); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) CommentsByItems(ctx context.Context, itemIDs []int64) ([]model.CommentDetail, error) {
	const q = `
		SELECT c.id, c.item_id, c.author_id, c.text, c.created, u.name
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created DESC`
	rows, err := r.db.Pool.Query(ctx, q, itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CommentDetail
	for rows.Next() {
		var c model.CommentDetail
		if err := rows.Scan(&c.ID, &c.ItemID, &c.AuthorID, &c.Text, &c.Created, &c.AuthorName); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2 AND end_date < $3 AND status = 'APPROVED'
		)`
	var ok bool
	err := r.db.Pool.QueryRow(ctx, q, itemID, bookerID, now).Scan(&ok)
	return ok, err
}

func (r *repo) InsertComment(ctx context.Context, c model.Comment) (*model.CommentDetail, error) {
	const q = `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.Pool.QueryRow(ctx, q, c.Text, c.ItemID, c.AuthorID, c.Created).Scan(&c.ID); err != nil {
		return nil, err
	}
	const authorQ = `SELECT name FROM users WHERE id = $1`
	var name string
	if err := r.db.Pool.QueryRow(ctx, authorQ, c.AuthorID).Scan(&name); err != nil {
		return nil, err
	}
	return &model.CommentDetail{Comment: c, AuthorName: name}, nil
}
