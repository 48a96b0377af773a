package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/currency"
	"github.com/paycycle-hq/paycycle-backend-go/internal/pkg/database"
)

type currencyRepositoryImpl struct {
	db *database.DB
}

// NewCurrencyRepository creates a new currency repository instance
func NewCurrencyRepository(db *database.DB) currency.CurrencyRepository {
	return &currencyRepositoryImpl{db: db}
}

// Create implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) Create(ctx context.Context, c currency.Currency) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO currencies (code, name, symbol, exchange_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, code, name, symbol, exchange_rate, created_at
	`

	var created currency.Currency
	err := q.QueryRow(ctx, query, c.Code, c.Name, c.Symbol, c.ExchangeRate).Scan(
		&created.ID, &created.Code, &created.Name, &created.Symbol,
		&created.ExchangeRate, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return currency.Currency{}, currency.ErrCurrencyExists
		}
		return currency.Currency{}, fmt.Errorf("failed to create currency: %w", err)
	}

	return created, nil
}

// GetByID implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) GetByID(ctx context.Context, id string) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, code, name, symbol, exchange_rate, created_at FROM currencies WHERE id = $1`

	var c currency.Currency
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return currency.Currency{}, currency.ErrCurrencyNotFound
		}
		return currency.Currency{}, fmt.Errorf("failed to get currency: %w", err)
	}

	return c, nil
}

// GetByCode implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) GetByCode(ctx context.Context, code string) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, code, name, symbol, exchange_rate, created_at FROM currencies WHERE code = $1`

	var c currency.Currency
	err := q.QueryRow(ctx, query, code).Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return currency.Currency{}, currency.ErrCurrencyNotFound
		}
		return currency.Currency{}, fmt.Errorf("failed to get currency by code: %w", err)
	}

	return c, nil
}

// List implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) List(ctx context.Context) ([]currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, code, name, symbol, exchange_rate, created_at FROM currencies ORDER BY code ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	var currencies []currency.Currency
	for rows.Next() {
		var c currency.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.ExchangeRate, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return currencies, nil
}
