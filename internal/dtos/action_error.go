package dtos

// ActionError is the error envelope returned by mutations that fail without
// producing a result. FieldErrors maps field name to the first violation for
// that field; it is omitted for errors that are not field-scoped.
type ActionError struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}
