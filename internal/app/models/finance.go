package models

import "time"

// Fee defines a fee row based on the 'fees' table
type Fee struct {
	ID            int64          `json:"id" db:"id"`
	StudentID     int64          `json:"studentId" db:"student_id"`
	FeeType       FeeType        `json:"feeType" db:"fee_type"`
	Amount        float64        `json:"amount" db:"amount"`
	DueDate       *time.Time     `json:"dueDate,omitempty" db:"due_date"`
	PaidDate      *time.Time     `json:"paidDate,omitempty" db:"paid_date"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty" db:"payment_method"`
	TransactionID *string        `json:"transactionId,omitempty" db:"transaction_id"`
	Status        FeeStatus      `json:"status" db:"status"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
}
