//go:build integration

package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulj/sdms/internal/app/migrations"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/models/dto"
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/config"
	"github.com/rahulj/sdms/internal/db"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
)

// newTestServices connects to the database named by TEST_DATABASE_URL,
// applies the migrations and clears every table. Tests are skipped when the
// variable is unset.
func newTestServices(t *testing.T) (*Services, *db.PostgresDB) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"))

	_, err = pool.Exec(ctx, `
		TRUNCATE identities, departments, admins, faculty, students, librarians,
			classes, subjects, subject_allocations, timetable, attendance, marks,
			fees, library_books, book_issues
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Ledger.AutoCreateSubjects = true
	cfg.Ledger.DefaultMaxMarks = 100
	cfg.Library.FinePerDay = 5
	cfg.Library.LoanDays = 14

	database := &db.PostgresDB{Pool: pool}
	return NewServices(cfg, database, repositories.NewRepositories(pool)), database
}

func TestIdentityUpsertKeepsOneRow(t *testing.T) {
	svcs, database := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, svcs.IdentityService.Link(ctx, "Dean@School.Local", models.RoleAdmin, "A_001"))
	require.NoError(t, svcs.IdentityService.Link(ctx, "dean@school.local", models.RoleAdmin, "A_002"))

	var n int
	require.NoError(t, database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM identities`).Scan(&n))
	assert.Equal(t, 1, n)

	rec, err := svcs.IdentityService.Resolve(ctx, "DEAN@school.local")
	require.NoError(t, err)
	assert.Equal(t, "A_002", rec.CanonicalID)
}

func TestAttendanceRewriteKeepsOneRow(t *testing.T) {
	svcs, database := newTestServices(t)
	ctx := context.Background()

	student, err := svcs.RosterService.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name: "Asha Verma", Email: "asha@school.local",
	})
	require.NoError(t, err)

	record := func(status string) {
		_, err := svcs.LedgerService.RecordAttendance(ctx, &dto.RecordAttendanceRequest{
			Subject:   "Mathematics",
			Date:      "2026-08-10",
			StatusMap: map[string]string{student.StudentUID: status},
		})
		require.NoError(t, err)
	}
	record("Present")
	record("Absent")

	var n int
	var status string
	require.NoError(t, database.Pool.QueryRow(ctx,
		`SELECT COUNT(*), MIN(status) FROM attendance`).Scan(&n, &status))
	assert.Equal(t, 1, n)
	assert.Equal(t, "Absent", status)
}

func TestDeleteStudentRemovesDirectoryEntryAndLoans(t *testing.T) {
	svcs, database := newTestServices(t)
	ctx := context.Background()

	student, err := svcs.RosterService.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name: "Ravi Nair", Email: "ravi@school.local",
	})
	require.NoError(t, err)

	book, err := svcs.LibraryService.AddBook(ctx, &dto.CreateBookRequest{Title: "Go in Practice"})
	require.NoError(t, err)
	_, err = svcs.LibraryService.IssueBook(ctx, &dto.IssueBookRequest{
		BookID: book.ID, StudentUID: student.StudentUID,
	})
	require.NoError(t, err)

	require.NoError(t, svcs.RosterService.DeleteStudent(ctx, student.StudentUID))

	_, err = svcs.IdentityService.Resolve(ctx, "ravi@school.local")
	assert.ErrorIs(t, err, apperrors.ErrIdentityNotFound)

	var n int
	require.NoError(t, database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM book_issues`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestUpdateLibrarianMovesDirectoryEntry(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	lib, err := svcs.RosterService.CreateLibrarian(ctx, &dto.CreateLibrarianRequest{
		Name: "Meera Iyer", Email: "meera@school.local",
	})
	require.NoError(t, err)

	newEmail := "m.iyer@school.local"
	_, err = svcs.RosterService.UpdateLibrarian(ctx, lib.LibrarianUID, &dto.UpdateLibrarianRequest{Email: &newEmail})
	require.NoError(t, err)

	rec, err := svcs.IdentityService.Resolve(ctx, newEmail)
	require.NoError(t, err)
	assert.Equal(t, lib.LibrarianUID, rec.CanonicalID)

	_, err = svcs.IdentityService.Resolve(ctx, "meera@school.local")
	assert.ErrorIs(t, err, apperrors.ErrIdentityNotFound)
}

func TestReassignToTakenAddressConflicts(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, svcs.IdentityService.Link(ctx, "a@school.local", models.RoleStudent, "S_001"))
	require.NoError(t, svcs.IdentityService.Link(ctx, "b@school.local", models.RoleStudent, "S_002"))

	err := svcs.IdentityService.Reassign(ctx, "a@school.local", "b@school.local")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	_, database := newTestServices(t)
	ctx := context.Background()

	failed := errors.New("directory write rejected")
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO identities (contact_address, role, canonical_id)
			VALUES ('x@school.local', 'student', 'S_001')`); err != nil {
			return err
		}
		return failed
	})
	assert.ErrorIs(t, err, failed)

	var n int
	require.NoError(t, database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM identities`).Scan(&n))
	assert.Equal(t, 0, n)
}
