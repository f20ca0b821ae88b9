package models

// Role identifies which role-entity variant an identity record points at.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleFaculty    Role = "faculty"
	RoleStudent    Role = "student"
	RoleLibrarian  Role = "librarian"
)

// Display-id prefixes per role-entity variant.
const (
	PrefixAdmin     = "A"
	PrefixFaculty   = "F"
	PrefixStudent   = "S"
	PrefixLibrarian = "L"
)

// AttendanceStatus is the state recorded for one student on one date.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLeave   AttendanceStatus = "Leave"
)

// ValidAttendanceStatus reports whether s is a known attendance status.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return true
	}
	return false
}

// ExamType distinguishes mark rows for the same (student, subject).
type ExamType string

const (
	ExamMidterm    ExamType = "Midterm"
	ExamFinal      ExamType = "Final"
	ExamQuiz       ExamType = "Quiz"
	ExamAssignment ExamType = "Assignment"
)

// ValidExamType reports whether e is a known exam type.
func ValidExamType(e ExamType) bool {
	switch e {
	case ExamMidterm, ExamFinal, ExamQuiz, ExamAssignment:
		return true
	}
	return false
}

// IssueStatus tracks the lifecycle of a library loan.
type IssueStatus string

const (
	IssueIssued   IssueStatus = "Issued"
	IssueReturned IssueStatus = "Returned"
	IssueOverdue  IssueStatus = "Overdue"
)

// FeeType categorizes fee rows.
type FeeType string

const (
	FeeTuition     FeeType = "Tuition"
	FeeExamination FeeType = "Examination"
	FeeLibrary     FeeType = "Library"
	FeeTransport   FeeType = "Transport"
	FeeSports      FeeType = "Sports"
)

// FeeStatus is the payment state of a fee row.
type FeeStatus string

const (
	FeePaid    FeeStatus = "Paid"
	FeePending FeeStatus = "Pending"
	FeeOverdue FeeStatus = "Overdue"
)

// PaymentMethod records how a fee was settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentOnline PaymentMethod = "Online"
	PaymentCheque PaymentMethod = "Cheque"
)
