package orders

import "github.com/tu-usuario/suministros-api/internal/application/dto"

// EventPublisher puerto del hub de notificaciones. Publish no debe bloquear:
// los suscriptores lentos se descartan, el evento es solo un disparador de refetch.
type EventPublisher interface {
	Publish(orgID string, ev dto.OrderEvent)
}

// DispatchAdviceParser puerto del parser XML de avisos de despacho de proveedor.
type DispatchAdviceParser interface {
	Parse(data []byte) (*dto.CreateOrderRequest, error)
}
