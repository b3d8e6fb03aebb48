package response

import (
	"errors"
	"net/http"

	"github.com/staffsync/leave-backend-go/internal/domain/employee"
	"github.com/staffsync/leave-backend-go/internal/domain/leave"
	"github.com/staffsync/leave-backend-go/internal/domain/user"
	"github.com/staffsync/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Selected dates are incorrect, please select again", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "No employee profile found for this user")

	// User domain errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
