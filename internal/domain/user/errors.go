package user

import "errors"

var (
	ErrAdminPrivilegeRequired = errors.New("Admin privilege required")
)
