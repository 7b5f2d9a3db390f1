package item

// Req carries both create and patch payloads; for a patch, nil means leave
// the field unchanged. The gateway tier enforces which fields must be
// present on create.
type Req struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

type CommentReq struct {
	Text string `json:"text"`
}
