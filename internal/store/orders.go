// ABOUTME: Order store operations backing the demo orders table.
// ABOUTME: Handles listing with filters, status counts, deletes, and inline updates.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/plumline/listtable/table"
)

// Order is one row of the demo orders table.
type Order struct {
	ID               string
	OrderNumber      string
	Customer         string
	Status           string
	Country          string
	TotalSpent       int64
	CurrencyCode     string
	DiscountRate     float64
	DiscountRateType string
	ItemsCount       int64
	Website          string
	IsTest           bool
	FileSize         int64
	CreatedAt        int64
}

// Field exposes order values by column id for the table renderer.
func (o Order) Field(name string) (any, bool) {
	switch name {
	case "id":
		return o.ID, true
	case "order_number":
		return o.OrderNumber, true
	case "customer":
		return o.Customer, true
	case "status":
		return o.Status, true
	case "country":
		return o.Country, true
	case "total_spent":
		return o.TotalSpent, true
	case "currency":
		return o.CurrencyCode, true
	case "discount_rate":
		return o.DiscountRate, true
	case "discount_rate_type":
		return o.DiscountRateType, true
	case "items_count":
		return o.ItemsCount, true
	case "website":
		return o.Website, true
	case "is_test":
		return o.IsTest, true
	case "file_size":
		return o.FileSize, true
	case "created_at":
		return o.CreatedAt, true
	}
	return nil, false
}

// Currency implements the currency lookup shortcut for price formatting.
func (o Order) Currency() string {
	return o.CurrencyCode
}

const orderColumns = `id, order_number, customer, status, country, total_spent, currency,
	discount_rate, discount_rate_type, items_count, website, is_test, file_size, created_at`

// sortableOrderColumns whitelists ORDER BY targets. Everything else falls
// back to created_at.
var sortableOrderColumns = map[string]bool{
	"order_number": true,
	"customer":     true,
	"status":       true,
	"country":      true,
	"total_spent":  true,
	"items_count":  true,
	"created_at":   true,
}

func (s *Store) CreateOrder(ctx context.Context, o *Order) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.OrderNumber, o.Customer, o.Status, o.Country, o.TotalSpent, o.CurrencyCode,
		o.DiscountRate, o.DiscountRateType, o.ItemsCount, o.Website, o.IsTest, o.FileSize, o.CreatedAt,
	)
	return err
}

// ListOrders returns one page of orders plus the total matching the filters.
func (s *Store) ListOrders(ctx context.Context, q table.Query) ([]Order, int, error) {
	where := "1=1"
	var args []any

	if q.Status != "" {
		where += " AND status = ?"
		args = append(args, q.Status)
	}
	if q.Search != "" {
		where += ` AND (order_number LIKE ? ESCAPE '\' OR customer LIKE ? ESCAPE '\')`
		pattern := "%" + escapeSQLLike(q.Search) + "%"
		args = append(args, pattern, pattern)
	}
	if country := q.Filters["country"]; country != "" {
		where += " AND country = ?"
		args = append(args, country)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := "created_at"
	if sortableOrderColumns[q.OrderBy] {
		orderBy = q.OrderBy
	}
	direction := "DESC"
	if q.Order == "asc" {
		direction = "ASC"
	}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	offset := 0
	if q.Page > 1 {
		offset = (q.Page - 1) * perPage
	}

	query := fmt.Sprintf("SELECT %s FROM orders WHERE %s ORDER BY %s %s LIMIT ? OFFSET ?",
		orderColumns, where, orderBy, direction)
	args = append(args, perPage, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Customer, &o.Status, &o.Country,
			&o.TotalSpent, &o.CurrencyCode, &o.DiscountRate, &o.DiscountRateType,
			&o.ItemsCount, &o.Website, &o.IsTest, &o.FileSize, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

// CountOrdersByStatus returns per-status totals for the views bar.
func (s *Store) CountOrdersByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (s *Store) GetOrder(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := s.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = ?", id,
	).Scan(&o.ID, &o.OrderNumber, &o.Customer, &o.Status, &o.Country,
		&o.TotalSpent, &o.CurrencyCode, &o.DiscountRate, &o.DiscountRateType,
		&o.ItemsCount, &o.Website, &o.IsTest, &o.FileSize, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order not found")
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("order not found")
	}
	return nil
}

// UpdateOrderStatus backs the bulk status actions.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("order not found")
	}
	return nil
}

// editableOrderColumns whitelists inline-updatable columns and validates
// their raw form values.
var editableOrderColumns = map[string]func(string) (any, error){
	"customer": func(v string) (any, error) { return v, nil },
	"items_count": func(v string) (any, error) {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("items count must be a whole number")
		}
		return n, nil
	},
	"status": func(v string) (any, error) { return v, nil },
}

// UpdateOrderColumn applies an inline edit and returns the stored value.
func (s *Store) UpdateOrderColumn(ctx context.Context, id, column, value string) (string, error) {
	parse, ok := editableOrderColumns[column]
	if !ok {
		return "", fmt.Errorf("column %q is not editable", column)
	}
	parsed, err := parse(value)
	if err != nil {
		return "", err
	}

	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE orders SET %s = ? WHERE id = ?", column), parsed, id)
	if err != nil {
		return "", err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", fmt.Errorf("order not found")
	}
	return fmt.Sprint(parsed), nil
}
