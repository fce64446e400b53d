package common

import "errors"

// ErrInvalidToken means a credential could not be decoded. Match it with
// errors.Is.
var ErrInvalidToken = errors.New("invalid token")
