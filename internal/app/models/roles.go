package models

import "time"

// Admin defines the admin profile based on the 'admins' table
type Admin struct {
	ID        int64      `json:"id" db:"id"`
	AdminUID  string     `json:"adminUid" db:"admin_uid" example:"A_001"` // Display id, assigned once
	Name      string     `json:"name" db:"name"`
	Username  string     `json:"username" db:"username"`
	Role      Role       `json:"role" db:"role"` // admin or super_admin
	DOB       *time.Time `json:"dob,omitempty" db:"dob"`
	Email     string     `json:"email" db:"email"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// Faculty defines a teacher profile based on the 'faculty' table
type Faculty struct {
	ID            int64      `json:"id" db:"id"`
	FacultyUID    string     `json:"facultyUid" db:"faculty_uid" example:"F_001"`
	Name          string     `json:"name" db:"name"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender        *string    `json:"gender,omitempty" db:"gender"`
	Email         string     `json:"email" db:"email"`
	Phone         *string    `json:"phone,omitempty" db:"phone"`
	Address       *string    `json:"address,omitempty" db:"address"`
	DepartmentID  *int64     `json:"departmentId,omitempty" db:"department_id"`
	JoiningDate   *time.Time `json:"joiningDate,omitempty" db:"joining_date"`
	Qualification *string    `json:"qualification,omitempty" db:"qualification"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}

// Student defines a student profile based on the 'students' table
type Student struct {
	ID            int64      `json:"id" db:"id"`
	StudentUID    string     `json:"studentUid" db:"student_uid" example:"S_001"`
	Name          string     `json:"name" db:"name"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender        *string    `json:"gender,omitempty" db:"gender"`
	Email         string     `json:"email" db:"email"`
	Phone         *string    `json:"phone,omitempty" db:"phone"`
	Address       *string    `json:"address,omitempty" db:"address"`
	ClassID       *int64     `json:"classId,omitempty" db:"class_id"`
	AdmissionDate *time.Time `json:"admissionDate,omitempty" db:"admission_date"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`

	Class *Class `json:"class,omitempty"`
}

// Librarian defines a librarian profile based on the 'librarians' table
type Librarian struct {
	ID           int64      `json:"id" db:"id"`
	LibrarianUID string     `json:"librarianUid" db:"librarian_uid" example:"L_001"`
	Name         string     `json:"name" db:"name"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender       *string    `json:"gender,omitempty" db:"gender"`
	Email        string     `json:"email" db:"email"`
	Phone        *string    `json:"phone,omitempty" db:"phone"`
	Address      *string    `json:"address,omitempty" db:"address"`
	JoiningDate  *time.Time `json:"joiningDate,omitempty" db:"joining_date"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}
