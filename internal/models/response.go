package models

// Response codes used by every endpoint. Clients branch on Code,
// not on the HTTP status.
const (
	CodeSuccess = "success"
	CodeError   = "error"
)

// Response is the uniform JSON envelope returned by all handlers.
// For list operations Message carries a JSON-encoded array of tiles.
// swagger:model Response
type Response struct {
	// Result code: "success" or "error"
	Code string `json:"code"`

	// Human-readable message or JSON payload
	Message string `json:"message"`

	// Optional store diagnostic, present on some errors
	Error string `json:"error,omitempty"`
}
