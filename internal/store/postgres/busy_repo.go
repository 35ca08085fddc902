package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"openhours/backend/internal/domain"
)

type BusyBlock struct {
	bun.BaseModel `bun:"table:busy_blocks"`

	ID         uuid.UUID `bun:"id,pk,type:uuid"`
	CalendarID string    `bun:"calendar_id,notnull"`
	StartTime  time.Time `bun:"start_time,notnull"`
	EndTime    time.Time `bun:"end_time,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
}

func (b *BusyBlock) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	if b.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		b.ID = id
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	return nil
}

type BusyRepo struct {
	db *bun.DB
}

func NewBusyRepo(db *bun.DB) *BusyRepo {
	return &BusyRepo{db: db}
}

type calendarTx struct {
	tx bun.Tx
}

func (r *BusyRepo) ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	return listBusy(ctx, r.db, calendarIDs, rangeStart, rangeEnd)
}

func (r *BusyRepo) ReplaceBusy(ctx context.Context, calendarID string, rng domain.DateRange, busy []domain.BusyPeriod) error {
	return r.InCalendarTransaction(ctx, calendarID, func(ctx context.Context, tx calendarTx) error {
		if _, err := tx.DeleteOverlapping(ctx, calendarID, rng); err != nil {
			return err
		}
		return tx.InsertBlocks(ctx, calendarID, busy)
	})
}

func (r *BusyRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// InCalendarTransaction serializes writers of the same calendar with a
// transaction-scoped advisory lock.
func (r *BusyRepo) InCalendarTransaction(ctx context.Context, calendarID string, fn func(ctx context.Context, tx calendarTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockCalendar(ctx, tx, calendarID); err != nil {
			return err
		}
		return fn(ctx, calendarTx{tx: tx})
	})
}

func lockCalendar(ctx context.Context, tx bun.Tx, calendarID string) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", calendarID).Exec(ctx)
	return err
}

func (c calendarTx) ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	return listBusy(ctx, c.tx, calendarIDs, rangeStart, rangeEnd)
}

func (c calendarTx) DeleteOverlapping(ctx context.Context, calendarID string, rng domain.DateRange) (int64, error) {
	res, err := c.tx.NewDelete().
		Model((*BusyBlock)(nil)).
		Where("calendar_id = ?", calendarID).
		Where("start_time < ?", rng.End).
		Where("end_time > ?", rng.Start).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c calendarTx) InsertBlocks(ctx context.Context, calendarID string, busy []domain.BusyPeriod) error {
	if len(busy) == 0 {
		return nil
	}

	rows := make([]BusyBlock, 0, len(busy))
	for _, b := range busy {
		rows = append(rows, BusyBlock{
			CalendarID: calendarID,
			StartTime:  b.Start.UTC(),
			EndTime:    b.End.UTC(),
		})
	}

	_, err := c.tx.NewInsert().Model(&rows).Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" && pgErr.ConstraintName == "busy_blocks_valid_span" {
			return domain.NewValidationError(domain.CodeInvalidBusyPeriod, "busy period end must be after start")
		}
		return err
	}
	return nil
}

func listBusy(ctx context.Context, db bun.IDB, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	if len(calendarIDs) == 0 {
		return nil, nil
	}

	var rows []BusyBlock
	err := db.NewSelect().
		Model(&rows).
		Where("calendar_id IN (?)", bun.In(calendarIDs)).
		Where("start_time < ?", rangeEnd).
		Where("end_time > ?", rangeStart).
		OrderExpr("start_time ASC, end_time ASC, calendar_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toRawBusy(rows), nil
}

func toRawBusy(rows []BusyBlock) []domain.RawBusyPeriod {
	out := make([]domain.RawBusyPeriod, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.RawBusyPeriod{
			Start:    r.StartTime.UTC().Format(time.RFC3339Nano),
			End:      r.EndTime.UTC().Format(time.RFC3339Nano),
			SourceID: r.CalendarID,
		})
	}
	return out
}
