package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
)

// TimetableRepository handles database operations for timetable slots
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new timetable repository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
	}
}

// Create creates a new timetable slot
func (r *TimetableRepository) Create(ctx context.Context, entry *models.Timetable) error {
	query := `
		INSERT INTO timetable (class_id, subject_id, day_of_week, period_number, start_time, end_time, room_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.ClassID, entry.SubjectID, entry.DayOfWeek, entry.PeriodNumber,
		entry.StartTime, entry.EndTime, entry.RoomNumber).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating timetable entry: %w", err)
	}

	return nil
}

// GetByClass retrieves the timetable slots for one class
func (r *TimetableRepository) GetByClass(ctx context.Context, classID int64) ([]*models.Timetable, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, class_id, subject_id, day_of_week, period_number, start_time, end_time, room_number, created_at
		FROM timetable
		WHERE class_id = $1
		ORDER BY day_of_week, period_number`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Timetable
	for rows.Next() {
		var e models.Timetable
		if err := rows.Scan(&e.ID, &e.ClassID, &e.SubjectID, &e.DayOfWeek, &e.PeriodNumber,
			&e.StartTime, &e.EndTime, &e.RoomNumber, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
