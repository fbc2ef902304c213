package usecase

import (
	"context"

	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

// DashboardUseCase resumen del tenant: órdenes por estado, pagos y clientes.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede
// directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary arma el DashboardSummaryResponse para la organización indicada.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, orgID string) (*dto.DashboardSummaryResponse, error) {
	orders, err := uc.analyticsRepo.OrdersByStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.analyticsRepo.PaymentTotalsByStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}
	customers, err := uc.analyticsRepo.CustomerCount(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryResponse{CustomerCount: customers}
	for _, o := range orders {
		out.OrdersByStatus = append(out.OrdersByStatus, dto.DashboardStatusEntry{Status: o.Status, Count: o.Count})
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, dto.DashboardPaymentEntry{Status: p.Status, Count: p.Count, Amount: p.Amount})
	}
	return out, nil
}
