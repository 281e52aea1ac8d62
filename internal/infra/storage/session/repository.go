package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/ajeitai-client/internal/auth"
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/psqlbuilder"
)

const table = "gateway_sessions"

var columns = []string{
	"id",
	"subject",
	"access_token",
	"refresh_token",
	"token_expiry",
	"created_at",
	"last_seen_at",
}

// Repository хранит сессии gateway в PostgreSQL, чтобы пользователи
// не теряли вход при перезапуске
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save создает или обновляет сессию. created_at при обновлении не меняется.
func (r *Repository) Save(ctx context.Context, rec *domain.SessionRecord) error {
	query, args, err := saveQuery(rec)
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Get возвращает auth.ErrSessionNotFound, если сессии нет
func (r *Repository) Get(ctx context.Context, id string) (*domain.SessionRecord, error) {
	query, args, err := getQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var rec domain.SessionRecord
	var expiry sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&rec.Subject,
		&rec.AccessToken,
		&rec.RefreshToken,
		&expiry,
		&rec.CreatedAt,
		&rec.LastSeenAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan session: %v", ErrScanRow, err)
	}
	rec.TokenExpiry = expiry.Time

	return &rec, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteIdle удаляет сессии без активности с момента before
func (r *Repository) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := deleteIdleQuery(before)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdle - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdle - execute delete: %v", ErrExecQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteIdle - rows affected: %v", ErrExecQuery, err)
	}
	return n, nil
}

func saveQuery(rec *domain.SessionRecord) (string, []interface{}, error) {
	var expiry sql.NullTime
	if !rec.TokenExpiry.IsZero() {
		expiry = sql.NullTime{Time: rec.TokenExpiry, Valid: true}
	}

	return psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			rec.ID,
			rec.Subject,
			rec.AccessToken,
			rec.RefreshToken,
			expiry,
			rec.CreatedAt,
			rec.LastSeenAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expiry = EXCLUDED.token_expiry,
			last_seen_at = EXCLUDED.last_seen_at`).
		ToSql()
}

func getQuery(id string) (string, []interface{}, error) {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func deleteIdleQuery(before time.Time) (string, []interface{}, error) {
	return psqlbuilder.Delete(table).
		Where(squirrel.Lt{"last_seen_at": before}).
		ToSql()
}
