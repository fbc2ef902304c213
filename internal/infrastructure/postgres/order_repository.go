package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository. Las líneas de la orden se
// guardan como JSONB en la misma fila: se leen y escriben siempre juntas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, org_id, restaurant_id, supplier_id, supplier_name, status, items, total, currency, expected_delivery, created_at, updated_at`

// Create persiste una orden nueva.
func (r *OrderRepo) Create(order *entity.SupplierOrder) error {
	query := `
		INSERT INTO supplier_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrgID, order.RestaurantID, order.SupplierID, order.SupplierName,
		order.Status, order.Items, order.Total, order.Currency, order.ExpectedDelivery,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID, nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.SupplierOrder, error) {
	var o entity.SupplierOrder
	err := r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM supplier_orders WHERE id = $1`, id).Scan(
		&o.ID, &o.OrgID, &o.RestaurantID, &o.SupplierID, &o.SupplierName,
		&o.Status, &o.Items, &o.Total, &o.Currency, &o.ExpectedDelivery,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByOrg lista órdenes con filtros dinámicos y total para paginación.
func (r *OrderRepo) ListByOrg(orgID string, f repository.OrderFilter, limit, offset int) ([]*entity.SupplierOrder, int, error) {
	where := `WHERE org_id = $1`
	args := []any{orgID}
	add := func(cond string, v any) {
		args = append(args, v)
		where += fmt.Sprintf(" AND %s $%d", cond, len(args))
	}
	if f.Status != "" {
		add("status =", f.Status)
	}
	if f.SupplierID != "" {
		add("supplier_id =", f.SupplierID)
	}
	if f.RestaurantID != "" {
		add("restaurant_id =", f.RestaurantID)
	}
	if f.From != nil {
		add("created_at >=", *f.From)
	}
	if f.To != nil {
		add("created_at <=", *f.To)
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM supplier_orders `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM supplier_orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupplierOrder
	for rows.Next() {
		var o entity.SupplierOrder
		if err := rows.Scan(&o.ID, &o.OrgID, &o.RestaurantID, &o.SupplierID, &o.SupplierName,
			&o.Status, &o.Items, &o.Total, &o.Currency, &o.ExpectedDelivery,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, total, rows.Err()
}

// UpdateStatus cambia el estado; la validación de la transición ocurre en el caso de uso.
func (r *OrderRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE supplier_orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
