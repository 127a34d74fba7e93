package dto

// ErrorDetail names the invariant a rejected operation violated.
type ErrorDetail struct {
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
}
