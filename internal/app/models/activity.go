package models

import "time"

// Attendance is one row of the activity ledger: one student, one date,
// optionally one subject. At most one row exists per (student, subject,
// date); writers update in place instead of duplicating.
type Attendance struct {
	ID         int64            `json:"id" db:"id"`
	StudentID  int64            `json:"studentId" db:"student_id"`
	ClassID    *int64           `json:"classId,omitempty" db:"class_id"` // Class at recording time, never re-derived
	SubjectID  *int64           `json:"subjectId,omitempty" db:"subject_id"`
	Date       time.Time        `json:"date" db:"attendance_date"`
	Status     AttendanceStatus `json:"status" db:"status"`
	Reason     *string          `json:"reason,omitempty" db:"reason"`
	RecordedBy *int64           `json:"recordedBy,omitempty" db:"recorded_by"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`

	SubjectName string `json:"subjectName,omitempty"`
}

// Mark is an exam result row. At most one row exists per (student, subject,
// exam type); same upsert rule as attendance.
type Mark struct {
	ID            int64      `json:"id" db:"id"`
	StudentID     int64      `json:"studentId" db:"student_id"`
	SubjectID     int64      `json:"subjectId" db:"subject_id"`
	ClassID       *int64     `json:"classId,omitempty" db:"class_id"`
	ExamType      ExamType   `json:"examType" db:"exam_type"`
	MarksObtained float64    `json:"marksObtained" db:"marks_obtained"`
	MaxMarks      float64    `json:"maxMarks" db:"max_marks"`
	ExamDate      *time.Time `json:"examDate,omitempty" db:"exam_date"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`

	SubjectName string `json:"subjectName,omitempty"`
}
