package invoice

import "errors"

var (
	ErrMessageTooShort = errors.New("message is too short")
)
