package user

// Req carries both create and patch payloads; for a patch, nil means leave
// the field unchanged.
type Req struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
