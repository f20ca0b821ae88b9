package models

import "time"

// Class defines a class/section based on the 'classes' table
type Class struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name" example:"10-A"`
	AcademicYear   *int      `json:"academicYear,omitempty" db:"academic_year"`
	ClassTeacherID *int64    `json:"classTeacherId,omitempty" db:"class_teacher_id"`
	RoomNumber     *string   `json:"roomNumber,omitempty" db:"room_number"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	ClassTeacher *Faculty `json:"classTeacher,omitempty"`
}

// Subject defines a subject based on the 'subjects' table
type Subject struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Code         *string   `json:"code,omitempty" db:"code"` // Unique when present
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"`
	Credits      *int      `json:"credits,omitempty" db:"credits"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// SubjectAllocation is a (class, subject, teacher) triple. The table itself
// does not forbid duplicate (class, subject) pairs; reporting resolves
// duplicates by taking the first row in insertion order.
type SubjectAllocation struct {
	ID        int64     `json:"id" db:"id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	SubjectID int64     `json:"subjectId" db:"subject_id"`
	TeacherID int64     `json:"teacherId" db:"teacher_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Class   *Class   `json:"class,omitempty"`
	Subject *Subject `json:"subject,omitempty"`
	Teacher *Faculty `json:"teacher,omitempty"`
}

// Timetable is an informational schedule slot. It carries no computed values
// and is never consumed by reporting.
type Timetable struct {
	ID           int64     `json:"id" db:"id"`
	ClassID      int64     `json:"classId" db:"class_id"`
	SubjectID    int64     `json:"subjectId" db:"subject_id"`
	DayOfWeek    *string   `json:"dayOfWeek,omitempty" db:"day_of_week"`
	PeriodNumber *int      `json:"periodNumber,omitempty" db:"period_number"`
	StartTime    *string   `json:"startTime,omitempty" db:"start_time" example:"09:00"`
	EndTime      *string   `json:"endTime,omitempty" db:"end_time" example:"09:45"`
	RoomNumber   *string   `json:"roomNumber,omitempty" db:"room_number"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
