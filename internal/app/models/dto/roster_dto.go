package dto

// CreateAdminRequest is the payload for creating an admin profile
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	DOB      string `json:"dob"` // YYYY-MM-DD, stored absent when unparseable
}

// UpdateAdminRequest carries partial admin profile updates
type UpdateAdminRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// CreateFacultyRequest is the payload for creating a faculty profile
type CreateFacultyRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"omitempty,email"`
	DateOfBirth   string  `json:"dateOfBirth"`
	Gender        *string `json:"gender"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	DepartmentID  *int64  `json:"departmentId"`
	JoiningDate   string  `json:"joiningDate"`
	Qualification *string `json:"qualification"`
}

// UpdateFacultyRequest carries partial faculty profile updates
type UpdateFacultyRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	DepartmentID  *int64  `json:"departmentId"`
	Qualification *string `json:"qualification"`
}

// CreateStudentRequest is the payload for creating a student profile
type CreateStudentRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"omitempty,email"`
	DateOfBirth   string  `json:"dateOfBirth"`
	Gender        *string `json:"gender"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ClassID       *int64  `json:"classId"`
	AdmissionDate string  `json:"admissionDate"`
}

// UpdateStudentRequest carries partial student profile updates
type UpdateStudentRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	ClassID *int64  `json:"classId"`
}

// CreateLibrarianRequest is the payload for creating a librarian profile
type CreateLibrarianRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	DateOfBirth string  `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	JoiningDate string  `json:"joiningDate"`
}

// UpdateLibrarianRequest carries partial librarian profile updates
type UpdateLibrarianRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ResolveIdentityRequest asks the directory who a contact address belongs to.
// The address is assumed to have been verified out-of-band by the caller.
type ResolveIdentityRequest struct {
	ContactAddress string `json:"contactAddress" binding:"required"`
}

// ResolveIdentityResponse is the directory's answer
type ResolveIdentityResponse struct {
	Role        string `json:"role"`
	CanonicalID string `json:"canonicalId"`
}
