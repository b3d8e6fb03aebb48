package employee

import "errors"

var (
	ErrProfileNotFound = errors.New("No employee profile found for this user")
)
