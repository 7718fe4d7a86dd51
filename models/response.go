package models

// ApiResponse is the uniform envelope returned by every API endpoint.
// Client scripts branch on Status, not on the HTTP status code: business-rule
// failures (out of stock, failed writes) come back as HTTP 200 with
// Status=false, while malformed requests and explicit lookup misses use
// 400/404 as usual.
type ApiResponse struct {
	Status     bool     `json:"status"`
	StatusCode int      `json:"statusCode,omitempty"`
	Message    string   `json:"message,omitempty"`
	Errors     []string `json:"errors,omitempty"`
	Data       any      `json:"data,omitempty"`
}
