package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
)

// MarkRepository handles database operations for exam result rows
type MarkRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMarkRepository creates a new mark repository
func NewMarkRepository(db *pgxpool.Pool) *MarkRepository {
	return &MarkRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert records a mark. An existing row for the same (student, subject,
// exam type) key is overwritten in place.
func (r *MarkRepository) Upsert(ctx context.Context, m *models.Mark) error {
	query := `
		INSERT INTO marks (student_id, subject_id, class_id, exam_type, marks_obtained, max_marks, exam_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (student_id, subject_id, exam_type)
		DO UPDATE SET marks_obtained = EXCLUDED.marks_obtained, max_marks = EXCLUDED.max_marks, exam_date = EXCLUDED.exam_date
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		m.StudentID, m.SubjectID, m.ClassID, m.ExamType, m.MarksObtained, m.MaxMarks, m.ExamDate).
		Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("error upserting mark: %w", err)
	}

	return nil
}

// ListByStudent retrieves a student's marks with subject names attached
func (r *MarkRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Mark, error) {
	sql, args, err := r.sb.Select("m.id", "m.student_id", "m.subject_id", "m.class_id",
		"m.exam_type", "m.marks_obtained", "m.max_marks", "m.exam_date", "m.created_at",
		"s.name").
		From("marks m").
		Join("subjects s ON s.id = m.subject_id").
		Where(squirrel.Eq{"m.student_id": studentID}).
		OrderBy("s.name", "m.exam_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build marks list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.Mark
	for rows.Next() {
		var m models.Mark
		if err := rows.Scan(&m.ID, &m.StudentID, &m.SubjectID, &m.ClassID,
			&m.ExamType, &m.MarksObtained, &m.MaxMarks, &m.ExamDate, &m.CreatedAt,
			&m.SubjectName); err != nil {
			return nil, err
		}
		marks = append(marks, &m)
	}

	return marks, rows.Err()
}

// StudentAggregates returns the mark-row count and average obtained marks for
// one student. The average is zero when the student has no marks.
func (r *MarkRepository) StudentAggregates(ctx context.Context, studentID int64) (count int64, avg float64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(marks_obtained), 0)
		FROM marks
		WHERE student_id = $1`, studentID).Scan(&count, &avg)
	if err != nil {
		return 0, 0, fmt.Errorf("error aggregating marks: %w", err)
	}
	return count, avg, nil
}

// ClassSubjectAverage computes the average mark over students currently in
// the given class for the given subject. Zero when no rows match.
func (r *MarkRepository) ClassSubjectAverage(ctx context.Context, classID, subjectID int64) (float64, error) {
	var avg float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(AVG(m.marks_obtained), 0)
		FROM marks m
		JOIN students st ON st.id = m.student_id
		WHERE st.class_id = $1 AND m.subject_id = $2`,
		classID, subjectID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("error averaging class subject marks: %w", err)
	}
	return avg, nil
}
