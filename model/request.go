package model

import "time"

// ItemRequest is a user's posting describing an item they need. Items
// created later may reference it as the request they fulfil.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"-"`
	Created     time.Time `json:"created"`
}
