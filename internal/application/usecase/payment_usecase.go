package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/domain"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

// PaymentUseCase historial de pagos y registro de pagos contra órdenes.
type PaymentUseCase struct {
	repo      repository.PaymentRepository
	orderRepo repository.OrderRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, orderRepo repository.OrderRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo}
}

// Create registra un pago contra una orden existente de la organización.
func (uc *PaymentUseCase) Create(orgID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.OrderID == "" || !entity.ValidPaymentMethod(in.Method) || in.Amount.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	currency := in.Currency
	if currency == "" {
		currency = order.Currency
	}
	now := time.Now()
	p := &entity.PaymentRecord{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		OrderID:   in.OrderID,
		Amount:    in.Amount,
		Currency:  currency,
		Method:    in.Method,
		Status:    entity.PaymentPending,
		Reference: in.Reference,
		CreatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// GetByID devuelve ErrNotFound si el pago no existe o es de otra organización.
func (uc *PaymentUseCase) GetByID(orgID, id string) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OrgID != orgID {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(p), nil
}

// List historial de pagos con filtros y paginación.
func (uc *PaymentUseCase) List(orgID string, q dto.PaymentListQuery) (*dto.PaymentListResponse, error) {
	q.DefaultPage()
	f := repository.PaymentFilter{
		Status:  q.Status,
		Method:  q.Method,
		OrderID: q.OrderID,
	}
	if q.From != "" {
		t, err := time.Parse("2006-01-02", q.From)
		if err != nil {
			return nil, fmt.Errorf("%w: from debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		f.From = &t
	}
	if q.To != "" {
		t, err := time.Parse("2006-01-02", q.To)
		if err != nil {
			return nil, fmt.Errorf("%w: to debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}
	list, total, err := uc.repo.ListByOrg(orgID, f, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// Summary acumulados por estado para el dashboard.
func (uc *PaymentUseCase) Summary(orgID string) (*dto.PaymentSummaryResponse, error) {
	rows, err := uc.repo.SummaryByOrg(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentSummaryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PaymentSummaryEntry{Status: r.Status, Count: r.Count, Amount: r.Amount})
	}
	return &dto.PaymentSummaryResponse{ByStatus: out}, nil
}

func toPaymentResponse(p *entity.PaymentRecord) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:        p.ID,
		OrgID:     p.OrgID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Method:    p.Method,
		Status:    p.Status,
		Reference: p.Reference,
		PaidAt:    p.PaidAt,
		CreatedAt: p.CreatedAt,
	}
}
