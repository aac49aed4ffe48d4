package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PackRequest carries the values to encode, in slot order.
type PackRequest struct {
	Values []any `json:"values"`
}

// PackResponse carries the packed record.
type PackResponse struct {
	Data string `json:"data"` // base64
	Size int    `json:"size"`
}

// UnpackRequest carries the bytes to decode.
type UnpackRequest struct {
	Data   string `json:"data"`             // base64
	Prefix bool   `json:"prefix,omitempty"` // tolerate trailing bytes
}

// UnpackResponse carries the decoded tuple. Consumed reports the final
// cursor position, which can be short of Total for prefix parses.
type UnpackResponse struct {
	Values   []any `json:"values"`
	Consumed int   `json:"consumed"`
	Total    int   `json:"total"`
}

// FormatInfo describes one registered format.
type FormatInfo struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
	Arity  int      `json:"arity"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	APIKey string
}
