package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"codedrip/internal/cart"
	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
)

// PostgresStore archives orders in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id          TEXT PRIMARY KEY,
	email       TEXT NOT NULL,
	first_name  TEXT NOT NULL,
	last_name   TEXT NOT NULL,
	address     TEXT NOT NULL,
	city        TEXT NOT NULL,
	state       TEXT NOT NULL,
	zip_code    TEXT NOT NULL,
	country     TEXT NOT NULL,
	phone       TEXT NOT NULL,
	items       JSONB NOT NULL,
	subtotal    NUMERIC(10,2) NOT NULL,
	shipping    NUMERIC(10,2) NOT NULL,
	tax         NUMERIC(10,2) NOT NULL,
	total       NUMERIC(10,2) NOT NULL,
	status      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
)`

// Migrate creates the orders table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, ordersSchema); err != nil {
		return fmt.Errorf("migrate orders table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, o Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, email, first_name, last_name, address, city, state,
			zip_code, country, phone, items, subtotal, shipping, tax,
			total, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		o.ID.String(), o.CustomerInfo.Email, o.CustomerInfo.FirstName,
		o.CustomerInfo.LastName, o.CustomerInfo.Address, o.CustomerInfo.City,
		o.CustomerInfo.State, o.CustomerInfo.ZipCode, o.CustomerInfo.Country,
		o.CustomerInfo.Phone, items, o.Subtotal, o.Shipping, o.Tax,
		o.Total, string(o.Status), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, orderID id.OrderID) (Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, first_name, last_name, address, city, state,
		       zip_code, country, phone, items, subtotal, shipping, tax,
		       total, status, created_at
		FROM orders WHERE id = $1`, orderID.String())

	var (
		o        Order
		rawItems []byte
	)
	err := row.Scan(
		&o.ID, &o.CustomerInfo.Email, &o.CustomerInfo.FirstName,
		&o.CustomerInfo.LastName, &o.CustomerInfo.Address, &o.CustomerInfo.City,
		&o.CustomerInfo.State, &o.CustomerInfo.ZipCode, &o.CustomerInfo.Country,
		&o.CustomerInfo.Phone, &rawItems, &o.Subtotal, &o.Shipping, &o.Tax,
		&o.Total, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, dErrors.New(dErrors.CodeNotFound, "order not found")
		}
		return Order{}, fmt.Errorf("find order: %w", err)
	}

	if err := json.Unmarshal(rawItems, &o.Items); err != nil {
		return Order{}, fmt.Errorf("decode order items: %w", err)
	}
	if o.Items == nil {
		o.Items = []cart.LineItem{}
	}
	return o, nil
}
