package model

type Item struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	// RequestID links the item to the request it fulfils, if any.
	RequestID *int64 `json:"requestId"`
}
