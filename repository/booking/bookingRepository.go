package booking

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

// selectDetail is the joined projection every booking read shares: the
// booking row plus its item and booker.
const selectDetail = `
	SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status,
	       i.id, i.name, i.description, i.available, i.owner_id, i.request_id,
	       u.id, u.name, u.email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

func (r *repo) UserExists(ctx context.Context, userID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var ok bool
	err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&ok)
	return ok, err
}

func (r *repo) ItemByID(ctx context.Context, itemID int64) (*model.Item, error) {
	const q = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`
	it := &model.Item{}
	err := r.db.Pool.QueryRow(ctx, q, itemID).
		Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repo) OwnerHasItems(ctx context.Context, ownerID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM items WHERE owner_id = $1)`
	var ok bool
	err := r.db.Pool.QueryRow(ctx, q, ownerID).Scan(&ok)
	return ok, err
}

func (r *repo) Insert(ctx context.Context, b model.Booking) (*model.BookingDetail, error) {
	const q = `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.Pool.QueryRow(ctx, q, b.Start, b.End, b.ItemID, b.BookerID, b.Status).Scan(&b.ID); err != nil {
		return nil, err
	}
	return r.ByID(ctx, b.ID)
}

func (r *repo) ByID(ctx context.Context, bookingID int64) (*model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE b.id = $1`
	d := &model.BookingDetail{}
	err := r.db.Pool.QueryRow(ctx, q, bookingID).Scan(
		&d.ID, &d.ItemID, &d.BookerID, &d.Start, &d.End, &d.Status,
		&d.Item.ID, &d.Item.Name, &d.Item.Description, &d.Item.Available, &d.Item.OwnerID, &d.Item.RequestID,
		&d.Booker.ID, &d.Booker.Name, &d.Booker.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repo) SetStatus(ctx context.Context, bookingID int64, status model.BookingStatus) error {
	const q = `
		UPDATE bookings
		SET status = $2
		WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, q, bookingID, status)
	return err
}

func (r *repo) AllByBooker(ctx context.Context, bookerID int64, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE b.booker_id = $1
	ORDER BY b.start_date DESC
	LIMIT $2 OFFSET $3`
	return r.list(ctx, q, bookerID, limit, offset)
}

func (r *repo) ByBookerAndStatus(ctx context.Context, bookerID int64, status model.BookingStatus, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE b.booker_id = $1 AND b.status = $2
	ORDER BY b.start_date DESC
	LIMIT $3 OFFSET $4`
	return r.list(ctx, q, bookerID, status, limit, offset)
}

func (r *repo) PastByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE b.booker_id = $1 AND b.end_date < $2
	ORDER BY b.start_date DESC
	LIMIT $3 OFFSET $4`
	return r.list(ctx, q, bookerID, now, limit, offset)
}

func (r *repo) FutureByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE b.booker_id = $1 AND b.start_date > $2
	ORDER BY b.start_date DESC
	LIMIT $3 OFFSET $4`
	return r.list(ctx, q, bookerID, now, limit, offset)
}

func (r *repo) CurrentByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE b.booker_id = $1 AND b.start_date < $2 AND b.end_date > $2
	ORDER BY b.start_date DESC
	LIMIT $3 OFFSET $4`
	return r.list(ctx, q, bookerID, now, limit, offset)
}

func (r *repo) AllForOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE i.owner_id = $1
	ORDER BY b.start_date DESC
	LIMIT $2 OFFSET $3`
	return r.list(ctx, q, ownerID, limit, offset)
}

func (r *repo) ForOwnerAndStatus(ctx context.Context, ownerID int64, status model.BookingStatus, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE i.owner_id = $1 AND b.status = $2
	ORDER BY b.start_date DESC
	LIMIT $3 OFFSET $4`
	return r.list(ctx, q, ownerID, status, limit, offset)
}

func (r *repo) PastForOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE i.owner_id = $1 AND b.end_date < $2
	ORDER BY b.start_date DESC
	LIMIT $3 OFFSET $4`
	return r.list(ctx, q, ownerID, now, limit, offset)
}

func (r *repo) FutureForOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE i.owner_id = $1 AND b.start_date > $2
	ORDER BY b.start_date DESC
	LIMIT $3 OFFSET $4`
	return r.list(ctx, q, ownerID, now, limit, offset)
}

func (r *repo) CurrentForOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]model.BookingDetail, error) {
	const q = selectDetail + `
	WHERE i.owner_id = $1 AND b.start_date < $2 AND b.end_date > $2
	ORDER BY b.start_date DESC
	LIMIT $3 OFFSET $4`
	return r.list(ctx, q, ownerID, now, limit, offset)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.BookingDetail, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BookingDetail
	for rows.Next() {
		var d model.BookingDetail
		if err := rows.Scan(
			&d.ID, &d.ItemID, &d.BookerID, &d.Start, &d.End, &d.Status,
			&d.Item.ID, &d.Item.Name, &d.Item.Description, &d.Item.Available, &d.Item.OwnerID, &d.Item.RequestID,
			&d.Booker.ID, &d.Booker.Name, &d.Booker.Email,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
