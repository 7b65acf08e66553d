package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  *ProfileResponse `json:"user"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// SearchResponse groups search hits per entity; empty buckets stay non-nil so
// the JSON always carries all four keys.
type SearchResponse struct {
	Users  []UserResponse     `json:"users"`
	Skills []SkillWithOwner   `json:"skills"`
	Deals  []DealWithCreator  `json:"deals"`
	Events []EventWithCreator `json:"events"`
}
