package gateway

import "time"

type userCreateReq struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=512"`
}

type userUpdateReq struct {
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=512"`
}

type itemCreateReq struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=512"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type itemUpdateReq struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=512"`
	Available   *bool   `json:"available"`
}

type bookingCreateReq struct {
	ItemID int64      `json:"itemId" validate:"required"`
	Start  *time.Time `json:"start" validate:"required"`
	End    *time.Time `json:"end" validate:"required"`
}

// windowValid applies the booking date rules: both bounds present, start
// strictly before end, and start not in the past.
func (r bookingCreateReq) windowValid(now time.Time) bool {
	if r.Start == nil || r.End == nil {
		return false
	}
	if r.Start.After(*r.End) || r.Start.Equal(*r.End) {
		return false
	}
	return !r.Start.Before(now)
}

type commentCreateReq struct {
	Text string `json:"text" validate:"required"`
}

type requestCreateReq struct {
	Description string `json:"description" validate:"required,max=512"`
}
