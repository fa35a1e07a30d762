package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/shenikar/waste_sorting_system/internal/service"
)

const uniqueViolationCode = "23505"

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) service.AccountRepository {
	return &AccountRepository{db: db}
}

// Create создает учетную запись пользователя
func (r *AccountRepository) Create(ctx context.Context, account *models.UserAccount) error {
	query := `
		INSERT INTO users (username, password_hash, points, carbon_saved, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		account.Username,
		account.PasswordHash,
		account.Points,
		account.CarbonSaved,
		account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return service.ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername возвращает учетную запись вместе с последними записями истории
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	account, err := r.getAccount(ctx, tx, username, false)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return account, nil
}

// ApplyEntry в одной транзакции блокирует строку пользователя, применяет запись
// и удаляет историю сверх лимита
func (r *AccountRepository) ApplyEntry(ctx context.Context, username string, entry models.HistoryEntry) (*models.UserAccount, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	account, err := r.getAccount(ctx, tx, username, true)
	if err != nil {
		return nil, err
	}
	if err := account.Apply(entry); err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE users SET
			points = $1,
			carbon_saved = $2
		WHERE username = $3;
	`
	if _, err := tx.Exec(ctx, updateQuery, account.Points, account.CarbonSaved, username); err != nil {
		return nil, fmt.Errorf("failed to update user balance: %w", err)
	}

	insertQuery := `
		INSERT INTO history_entries (id, username, occurred_at, action, bin_location, bin_category, points, carbon_impact)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertQuery,
		entry.ID,
		username,
		entry.Timestamp,
		entry.Action,
		entry.BinLocation,
		entry.BinCategory,
		entry.Points,
		entry.CarbonImpact,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save history entry: %w", err)
	}

	trimQuery := `
		DELETE FROM history_entries
		WHERE username = $1
			AND seq NOT IN (
				SELECT seq FROM history_entries
				WHERE username = $1
				ORDER BY seq DESC
				LIMIT $2
			);
	`
	if _, err := tx.Exec(ctx, trimQuery, username, models.HistoryLimit); err != nil {
		return nil, fmt.Errorf("failed to trim history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) getAccount(ctx context.Context, tx pgx.Tx, username string, forUpdate bool) (*models.UserAccount, error) {
	query := `
		SELECT username, password_hash, points, carbon_saved, created_at
		FROM users
		WHERE username = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	account := &models.UserAccount{}
	err := tx.QueryRow(ctx, query, username).Scan(
		&account.Username,
		&account.PasswordHash,
		&account.Points,
		&account.CarbonSaved,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", username, models.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	history, err := loadHistory(ctx, tx, username)
	if err != nil {
		return nil, err
	}
	account.History = history
	return account, nil
}

// loadHistory возвращает записи истории от новых к старым
func loadHistory(ctx context.Context, tx pgx.Tx, username string) ([]models.HistoryEntry, error) {
	query := `
		SELECT id, occurred_at, action, bin_location, bin_category, points, carbon_impact
		FROM history_entries
		WHERE username = $1
		ORDER BY seq DESC
		LIMIT $2;
	`
	rows, err := tx.Query(ctx, query, username, models.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	history := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Action, &e.BinLocation, &e.BinCategory, &e.Points, &e.CarbonImpact); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error history iteration: %w", err)
	}
	return history, nil
}
