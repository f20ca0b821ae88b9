package dto

// RecentAttendanceEntry is one row of a student's recent attendance strip,
// oldest first.
type RecentAttendanceEntry struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Status  string `json:"status"`
	Subject string `json:"subject,omitempty"`
}

// StudentStatsResponse is the student dashboard summary
type StudentStatsResponse struct {
	AttendancePercentage float64                 `json:"attendancePercentage"`
	AverageMarks         float64                 `json:"averageMarks"`
	TotalExams           int64                   `json:"totalExams"`
	RecentAttendance     []RecentAttendanceEntry `json:"recentAttendance"`
}

// ClassPerformanceEntry is the average mark of one (class, subject) pair a
// teacher is allocated to.
type ClassPerformanceEntry struct {
	ClassName    string  `json:"className"`
	SubjectName  string  `json:"subjectName"`
	AverageMarks float64 `json:"averageMarks"`
}

// FacultyStatsResponse is the teacher dashboard summary
type FacultyStatsResponse struct {
	ClassesCount     int                     `json:"classesCount"`
	TotalStudents    int64                   `json:"totalStudents"`
	ClassPerformance []ClassPerformanceEntry `json:"classPerformance"`
}

// GrowthPoint is the cumulative enrollment as of one admission month.
type GrowthPoint struct {
	Month string `json:"month" example:"Jan"`
	Count int64  `json:"count"`
}

// AdminStatsResponse is the school-wide dashboard summary
type AdminStatsResponse struct {
	TotalStudents          int64         `json:"totalStudents"`
	TotalFaculty           int64         `json:"totalFaculty"`
	AttendanceRate         float64       `json:"attendanceRate"`
	AttendanceDistribution []int64       `json:"attendanceDistribution"` // [present, absent]
	EnrollmentGrowth       []GrowthPoint `json:"enrollmentGrowth"`
	PendingFees            float64       `json:"pendingFees"`
}

// LibrarianStatsResponse is the library dashboard summary
type LibrarianStatsResponse struct {
	TotalBooks       int     `json:"totalBooks"`
	ActiveIssues     int     `json:"activeIssues"`
	OverdueIssues    int     `json:"overdueIssues"`
	OutstandingFines float64 `json:"outstandingFines"`
}
