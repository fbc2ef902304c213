package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, org_id, order_id, amount, currency, method, status, reference, paid_at, created_at`

// Create persiste un pago nuevo.
func (r *PaymentRepo) Create(p *entity.PaymentRecord) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.OrgID, p.OrderID, p.Amount, p.Currency, p.Method, p.Status,
		p.Reference, p.PaidAt, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID, nil si no existe.
func (r *PaymentRepo) GetByID(id string) (*entity.PaymentRecord, error) {
	var p entity.PaymentRecord
	err := r.q.QueryRow(context.Background(),
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id).Scan(
		&p.ID, &p.OrgID, &p.OrderID, &p.Amount, &p.Currency, &p.Method, &p.Status,
		&p.Reference, &p.PaidAt, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByOrg historial de pagos con filtros dinámicos y total para paginación.
func (r *PaymentRepo) ListByOrg(orgID string, f repository.PaymentFilter, limit, offset int) ([]*entity.PaymentRecord, int, error) {
	where := `WHERE org_id = $1`
	args := []any{orgID}
	add := func(cond string, v any) {
		args = append(args, v)
		where += fmt.Sprintf(" AND %s $%d", cond, len(args))
	}
	if f.Status != "" {
		add("status =", f.Status)
	}
	if f.Method != "" {
		add("method =", f.Method)
	}
	if f.OrderID != "" {
		add("order_id =", f.OrderID)
	}
	if f.From != nil {
		add("created_at >=", *f.From)
	}
	if f.To != nil {
		add("created_at <=", *f.To)
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM payments `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM payments %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		paymentColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.PaymentRecord
	for rows.Next() {
		var p entity.PaymentRecord
		if err := rows.Scan(&p.ID, &p.OrgID, &p.OrderID, &p.Amount, &p.Currency,
			&p.Method, &p.Status, &p.Reference, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// SummaryByOrg acumulado por estado (conteo e importe).
func (r *PaymentRepo) SummaryByOrg(orgID string) ([]repository.PaymentSummaryRow, error) {
	const query = `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM payments WHERE org_id = $1 GROUP BY status ORDER BY status`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("payment summary: %w", err)
	}
	defer rows.Close()
	var out []repository.PaymentSummaryRow
	for rows.Next() {
		var row repository.PaymentSummaryRow
		if err := rows.Scan(&row.Status, &row.Count, &row.Amount); err != nil {
			return nil, fmt.Errorf("scan payment summary: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
