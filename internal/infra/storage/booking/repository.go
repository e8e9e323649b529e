package booking

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

// Repository read-only репозиторий существующих бронирований.
// Сервис доступности бронирования не создает и не изменяет.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForDay получает активные бронирования бизнеса, начинающиеся в границах
// дня [dayStart, dayEnd), вместе с назначенными исполнителями их услуг.
// Бронирования без времени начала отфильтровываются самим условием выборки.
func (r *Repository) ListForDay(ctx context.Context, businessID int64, dayStart, dayEnd time.Time) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.business_id",
		"b.status",
		"b.scheduled_at",
		"b.estimated_end_at",
		"bs.service_id",
		"bs.server_employee_id",
		"bs.server_owner_id",
	).
		From("bookings b").
		LeftJoin("booking_services bs ON bs.booking_id = b.id").
		Where(squirrel.Eq{"b.business_id": businessID}).
		Where(squirrel.NotEq{"b.status": domain.InactiveStatuses}).
		Where(squirrel.GtOrEq{"b.scheduled_at": dayStart}).
		Where(squirrel.Lt{"b.scheduled_at": dayEnd}).
		OrderBy("b.id", "bs.service_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// Строки сгруппированы по бронированию (ORDER BY b.id), собираем
	// услуги каждого бронирования по ходу чтения
	bookings := make([]domain.Booking, 0)
	index := make(map[int64]int)

	for rows.Next() {
		var (
			id             int64
			businessIDCol  int64
			status         domain.BookingStatus
			scheduledAt    sql.NullTime
			estimatedEndAt sql.NullTime
			serviceID      sql.NullInt64
			serverEmployee sql.NullInt64
			serverOwner    sql.NullInt64
		)

		if err := rows.Scan(
			&id,
			&businessIDCol,
			&status,
			&scheduledAt,
			&estimatedEndAt,
			&serviceID,
			&serverEmployee,
			&serverOwner,
		); err != nil {
			return nil, fmt.Errorf("%w: ListForDay - scan row: %v", ErrScanRow, err)
		}

		pos, ok := index[id]
		if !ok {
			b := domain.Booking{
				ID:         id,
				BusinessID: businessIDCol,
				Status:     status,
			}
			if scheduledAt.Valid {
				t := scheduledAt.Time
				b.ScheduledAt = &t
			}
			if estimatedEndAt.Valid {
				t := estimatedEndAt.Time
				b.EstimatedEndAt = &t
			}

			bookings = append(bookings, b)
			pos = len(bookings) - 1
			index[id] = pos
		}

		// LEFT JOIN: у бронирования без услуг service_id будет NULL
		if serviceID.Valid {
			svc := domain.AvailedService{ServiceID: serviceID.Int64}
			if serverEmployee.Valid {
				v := serverEmployee.Int64
				svc.ServerEmployeeID = &v
			}
			if serverOwner.Valid {
				v := serverOwner.Int64
				svc.ServerOwnerID = &v
			}
			bookings[pos].Services = append(bookings[pos].Services, svc)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForDay - rows iteration: %v", ErrExecQuery, err)
	}

	return bookings, nil
}
