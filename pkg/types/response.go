package types

// SuccessEnvelope is the wire shape of every successful response.
type SuccessEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    any    `json:"meta,omitempty"`
	Note    string `json:"note,omitempty"`
}

// ErrorEnvelope carries only the public error text.
type ErrorEnvelope struct {
	Message string `json:"message"`
}

// PageMeta describes offset pagination for search results.
type PageMeta struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
