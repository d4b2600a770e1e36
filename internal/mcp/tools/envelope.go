// Package tools contains the MCP tool implementations for promptdeck.
package tools

// Envelope status values. Every tool response carries one of these; failures
// surface as status "error" inside a normal tool result, never as an MCP
// protocol fault.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// NamesEnvelope is the response envelope for get_all_names. Data holds one
// entry per prompt record in fetch order; a record without a name contributes
// a JSON null so list length matches the source.
type NamesEnvelope struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    []*string `json:"data,omitzero"`
}

// ContentEnvelope is the response envelope for get_content_by_name.
type ContentEnvelope struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    *PromptDetail `json:"data,omitempty"`
}

// PromptDetail is the data payload of a successful get_content_by_name call.
// Category and Description default to empty strings when the record omits
// them.
type PromptDetail struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// orEmpty dereferences an optional string field, defaulting to "".
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
