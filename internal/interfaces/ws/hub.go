// Package ws hub de notificaciones de órdenes sobre WebSocket. El cliente del
// dashboard escucha y dispara un refetch en cada evento; aquí no viaja estado,
// solo el aviso del cambio.
package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/application/orders"
)

var _ orders.EventPublisher = (*Hub)(nil)

// subscriber canal con buffer por conexión; si se llena, el evento se descarta.
type subscriber chan dto.OrderEvent

// Hub mantiene los suscriptores por organización.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[subscriber]struct{} // orgID -> conexiones
	log  zerolog.Logger
}

// NewHub construye el hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs: make(map[string]map[subscriber]struct{}),
		log:  log,
	}
}

// Publish envía el evento a todos los suscriptores de la organización.
// Nunca bloquea: un suscriptor con el buffer lleno pierde el evento
// (el siguiente refetch lo pondrá al día).
func (h *Hub) Publish(orgID string, ev dto.OrderEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[orgID] {
		select {
		case sub <- ev:
		default:
			h.log.Debug().Str("org_id", orgID).Str("order_id", ev.OrderID).
				Msg("suscriptor lento, evento descartado")
		}
	}
}

func (h *Hub) subscribe(orgID string) subscriber {
	sub := make(subscriber, 16)
	h.mu.Lock()
	if h.subs[orgID] == nil {
		h.subs[orgID] = make(map[subscriber]struct{})
	}
	h.subs[orgID][sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(orgID string, sub subscriber) {
	h.mu.Lock()
	delete(h.subs[orgID], sub)
	if len(h.subs[orgID]) == 0 {
		delete(h.subs, orgID)
	}
	h.mu.Unlock()
}

// SubscriberCount número de conexiones activas de una organización.
func (h *Hub) SubscriberCount(orgID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[orgID])
}

// Handler maneja una conexión WebSocket ya actualizada. El orgID debe venir
// en Locals (lo deja el middleware de auth antes del upgrade).
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		orgID, _ := c.Locals("org_id").(string)
		if orgID == "" {
			_ = c.Close()
			return
		}
		sub := h.subscribe(orgID)
		defer h.unsubscribe(orgID, sub)

		done := make(chan struct{})
		// Lector: solo para detectar el cierre del cliente.
		go func() {
			defer close(done)
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case ev := <-sub:
				if err := c.WriteJSON(ev); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
