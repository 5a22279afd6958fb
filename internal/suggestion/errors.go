package suggestion

import "errors"

var (
	ErrUnknownSuggestion = errors.New("unknown suggestion")
)
