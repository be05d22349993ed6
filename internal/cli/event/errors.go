package event

import "errors"

var (
	errMissingDay    = errors.New("--slot needs --day")
	errEventNotFound = errors.New("event not found")
)
