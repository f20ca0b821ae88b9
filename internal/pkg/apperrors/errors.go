package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	// ErrConflict signals a uniqueness violation detected at commit time.
	// Callers are expected to re-run the failing allocation and retry.
	ErrConflict = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Identity directory errors
var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrEmptyAddress     = errors.New("contact address is empty")
)

// Role-entity errors
var (
	ErrAdminNotFound     = errors.New("admin not found")
	ErrFacultyNotFound   = errors.New("faculty member not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrLibrarianNotFound = errors.New("librarian not found")
	ErrDisplayIDExists   = errors.New("display id already in use")
	ErrEmailExists       = errors.New("email already in use")
)

// Academic structure errors
var (
	ErrClassNotFound       = errors.New("class not found")
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrSubjectCodeExists   = errors.New("subject with this code already exists")
	ErrClassHasRelations   = errors.New("class has associated data and cannot be deleted")
	ErrSubjectHasRelations = errors.New("subject has associated data and cannot be deleted")
)

// Library errors
var (
	ErrBookNotFound  = errors.New("library book not found")
	ErrIssueNotFound = errors.New("book issue not found")
)

// Fee errors
var (
	ErrFeeNotFound = errors.New("fee record not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for failed reference validation
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
