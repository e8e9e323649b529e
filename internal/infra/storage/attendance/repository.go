package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository read-only репозиторий отметок присутствия сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отметок присутствия
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveForDay получает отметки присутствия бизнеса на дату day
// с активным статусом (present/late) и проставленным временем входа.
// time_out может быть NULL - открытая смена.
func (r *Repository) ListActiveForDay(ctx context.Context, businessID int64, day time.Time) ([]domain.AttendanceRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"employee_id",
		"status",
		"time_in",
		"time_out",
	).
		From("attendance_records").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"status": domain.ActiveAttendanceStatuses}).
		Where(squirrel.Eq{"attendance_date": day.Format(domain.DateFormat)}).
		Where("time_in IS NOT NULL").
		OrderBy("employee_id", "time_in").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForDay - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.AttendanceRecord, 0)

	for rows.Next() {
		var (
			record  domain.AttendanceRecord
			timeOut sql.NullTime
		)

		if err := rows.Scan(
			&record.ID,
			&record.BusinessID,
			&record.EmployeeID,
			&record.Status,
			&record.TimeIn,
			&timeOut,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveForDay - scan row: %v", ErrScanRow, err)
		}

		if timeOut.Valid {
			t := timeOut.Time
			record.TimeOut = &t
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveForDay - rows iteration: %v", ErrExecQuery, err)
	}

	return records, nil
}
