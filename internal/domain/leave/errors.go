package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("Leave request not found")
	ErrInvalidDateRange = errors.New("Selected dates are incorrect")
)
