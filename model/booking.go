// model/booking.go
package model

import "time"

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

type Booking struct {
	ID       int64         `json:"id"`
	ItemID   int64         `json:"-"`
	BookerID int64         `json:"-"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
}

// BookingDetail is a booking joined with its item and booker, the shape
// every booking read query returns.
type BookingDetail struct {
	Booking
	Item   Item `json:"item"`
	Booker User `json:"booker"`
}
