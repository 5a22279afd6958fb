package response

// HTTPError carries an HTTP status together with a machine-readable message.
// The message doubles as the error code clients switch on (e.g. the login
// form switches to signup mode on "USER_NOT_FOUND").
type HTTPError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}
