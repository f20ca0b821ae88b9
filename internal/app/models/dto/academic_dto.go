package dto

// CreateClassRequest is the payload for creating a class
type CreateClassRequest struct {
	Name           string  `json:"name" binding:"required"`
	AcademicYear   *int    `json:"academicYear"`
	ClassTeacherID *int64  `json:"classTeacherId"`
	RoomNumber     *string `json:"roomNumber"`
}

// CreateSubjectRequest is the payload for creating a subject
type CreateSubjectRequest struct {
	Name         string  `json:"name" binding:"required"`
	Code         *string `json:"code"`
	DepartmentID *int64  `json:"departmentId"`
	Credits      *int    `json:"credits"`
}

// CreateAllocationRequest assigns a teacher to a subject in a class
type CreateAllocationRequest struct {
	ClassID   int64 `json:"classId" binding:"required"`
	SubjectID int64 `json:"subjectId" binding:"required"`
	TeacherID int64 `json:"teacherId" binding:"required"`
}

// CreateTimetableRequest is the payload for one schedule slot
type CreateTimetableRequest struct {
	ClassID      int64   `json:"classId" binding:"required"`
	SubjectID    int64   `json:"subjectId" binding:"required"`
	DayOfWeek    *string `json:"dayOfWeek"`
	PeriodNumber *int    `json:"periodNumber"`
	StartTime    *string `json:"startTime"` // HH:MM
	EndTime      *string `json:"endTime"`
	RoomNumber   *string `json:"roomNumber"`
}

// CreateDepartmentRequest is the payload for creating a department
type CreateDepartmentRequest struct {
	Name          string  `json:"name" binding:"required"`
	HeadFacultyID *int64  `json:"headFacultyId"`
	Building      *string `json:"building"`
}
