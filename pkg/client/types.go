package client

// Prompt is a named prompt record as returned by the worker API.
//
// Optional fields are pointers so that absent JSON fields decode as nil and
// can be told apart from empty strings. Name is the lookup key; the API does
// not enforce uniqueness.
type Prompt struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Content     string  `json:"content"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}
