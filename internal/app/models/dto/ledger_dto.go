package dto

// RecordAttendanceRequest records attendance for a batch of students on one
// date for one subject. Map keys are student display ids.
type RecordAttendanceRequest struct {
	Subject   string            `json:"subject" binding:"required"` // Subject name
	Date      string            `json:"date" binding:"required"`    // YYYY-MM-DD
	StatusMap map[string]string `json:"statusMap" binding:"required"`
	Recorder  string            `json:"recorder"` // Faculty display id, optional
}

// RecordMarksRequest records exam results for a batch of students. Map values
// arrive as text and are coerced to numbers by the ledger.
type RecordMarksRequest struct {
	Subject  string            `json:"subject" binding:"required"`
	ExamType string            `json:"examType" binding:"required"`
	MaxMarks *float64          `json:"maxMarks"`
	ExamDate string            `json:"examDate"`
	MarksMap map[string]string `json:"marksMap" binding:"required"`
}

// CreateFeeRequest creates a pending fee row for a student
type CreateFeeRequest struct {
	StudentUID string  `json:"studentUid" binding:"required"`
	FeeType    string  `json:"feeType" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	DueDate    string  `json:"dueDate"`
}

// PayFeeRequest settles a fee row. A transaction id is generated when none
// is supplied.
type PayFeeRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	TransactionID string `json:"transactionId"`
}
