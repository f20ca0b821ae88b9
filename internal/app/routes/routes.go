package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulj/sdms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *controllers.Controllers) {
	v1 := router.Group("/api/v1")

	// Identity directory
	identity := v1.Group("/identity")
	{
		identity.POST("/resolve", c.IdentityController.Resolve)
	}

	// Roster: role-entity profiles keyed by display id
	admins := v1.Group("/admins")
	{
		admins.POST("", c.RosterController.CreateAdmin)
		admins.GET("", c.RosterController.ListAdmins)
		admins.GET("/:uid", c.RosterController.GetAdmin)
		admins.PUT("/:uid", c.RosterController.UpdateAdmin)
		admins.DELETE("/:uid", c.RosterController.DeleteAdmin)
	}

	faculty := v1.Group("/faculty")
	{
		faculty.POST("", c.RosterController.CreateFaculty)
		faculty.GET("", c.RosterController.ListFaculty)
		faculty.GET("/:uid", c.RosterController.GetFaculty)
		faculty.PUT("/:uid", c.RosterController.UpdateFaculty)
		faculty.DELETE("/:uid", c.RosterController.DeleteFaculty)
		faculty.GET("/:uid/stats", c.ReportingController.FacultyStats)
	}

	students := v1.Group("/students")
	{
		students.POST("", c.RosterController.CreateStudent)
		students.GET("", c.RosterController.ListStudents)
		students.GET("/:uid", c.RosterController.GetStudent)
		students.PUT("/:uid", c.RosterController.UpdateStudent)
		students.DELETE("/:uid", c.RosterController.DeleteStudent)
		students.GET("/:uid/stats", c.ReportingController.StudentStats)
		students.GET("/:uid/attendance", c.LedgerController.ListAttendance)
		students.GET("/:uid/marks", c.LedgerController.ListMarks)
		students.GET("/:uid/fees", c.LedgerController.ListFees)
	}

	librarians := v1.Group("/librarians")
	{
		librarians.POST("", c.RosterController.CreateLibrarian)
		librarians.GET("", c.RosterController.ListLibrarians)
		librarians.GET("/:uid", c.RosterController.GetLibrarian)
		librarians.PUT("/:uid", c.RosterController.UpdateLibrarian)
		librarians.DELETE("/:uid", c.RosterController.DeleteLibrarian)
	}

	// Academic association layer
	classes := v1.Group("/classes")
	{
		classes.POST("", c.AcademicController.CreateClass)
		classes.GET("", c.AcademicController.ListClasses)
		classes.GET("/:id", c.AcademicController.GetClass)
		classes.DELETE("/:id", c.AcademicController.DeleteClass)
		classes.GET("/:id/timetable", c.AcademicController.GetTimetable)
	}

	subjects := v1.Group("/subjects")
	{
		subjects.POST("", c.AcademicController.CreateSubject)
		subjects.GET("", c.AcademicController.ListSubjects)
		subjects.DELETE("/:id", c.AcademicController.DeleteSubject)
	}

	departments := v1.Group("/departments")
	{
		departments.POST("", c.AcademicController.CreateDepartment)
		departments.GET("", c.AcademicController.ListDepartments)
	}

	allocations := v1.Group("/allocations")
	{
		allocations.POST("", c.AcademicController.CreateAllocation)
		allocations.GET("", c.AcademicController.ListAllocations)
		allocations.DELETE("/:id", c.AcademicController.DeleteAllocation)
	}

	timetable := v1.Group("/timetable")
	{
		timetable.POST("", c.AcademicController.CreateTimetableEntry)
	}

	// Activity ledger writes
	attendance := v1.Group("/attendance")
	{
		attendance.POST("", c.LedgerController.RecordAttendance)
	}

	marks := v1.Group("/marks")
	{
		marks.POST("", c.LedgerController.RecordMarks)
	}

	fees := v1.Group("/fees")
	{
		fees.POST("", c.LedgerController.CreateFee)
		fees.POST("/:id/pay", c.LedgerController.PayFee)
	}

	// Library
	library := v1.Group("/library")
	{
		library.POST("/books", c.LibraryController.AddBook)
		library.GET("/books", c.LibraryController.ListBooks)
		library.POST("/issues", c.LibraryController.IssueBook)
		library.GET("/issues", c.LibraryController.ListIssues)
		library.POST("/issues/:id/return", c.LibraryController.ReturnBook)
	}

	// Dashboards
	stats := v1.Group("/stats")
	{
		stats.GET("/admin", c.ReportingController.AdminStats)
		stats.GET("/librarian", c.ReportingController.LibrarianStats)
	}
}
