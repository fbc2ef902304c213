package ws

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suministros-api/internal/application/dto"
)

func testHub() *Hub {
	return NewHub(zerolog.Nop())
}

func TestHub_Publish_LlegaASuscriptoresDeLaOrg(t *testing.T) {
	h := testHub()
	sub := h.subscribe("org-1")
	defer h.unsubscribe("org-1", sub)

	h.Publish("org-1", dto.OrderEvent{Type: "order_created", OrderID: "ord-1"})

	select {
	case ev := <-sub:
		assert.Equal(t, "order_created", ev.Type)
		assert.Equal(t, "ord-1", ev.OrderID)
	default:
		t.Fatal("el suscriptor debió recibir el evento")
	}
}

func TestHub_Publish_AislamientoPorOrganizacion(t *testing.T) {
	h := testHub()
	subA := h.subscribe("org-a")
	subB := h.subscribe("org-b")
	defer h.unsubscribe("org-a", subA)
	defer h.unsubscribe("org-b", subB)

	h.Publish("org-a", dto.OrderEvent{Type: "order_created", OrderID: "ord-1"})

	require.Len(t, subA, 1)
	assert.Len(t, subB, 0, "los eventos de una organización no cruzan a otra")
}

func TestHub_Publish_SinSuscriptores_NoBloquea(t *testing.T) {
	h := testHub()
	// No hay nadie escuchando: debe retornar de inmediato.
	h.Publish("org-sin-nadie", dto.OrderEvent{Type: "order_created", OrderID: "ord-1"})
}

func TestHub_Publish_BufferLleno_DescartaSinBloquear(t *testing.T) {
	h := testHub()
	sub := h.subscribe("org-1")
	defer h.unsubscribe("org-1", sub)

	// Llenar el buffer y publicar de más: ningún Publish debe bloquear.
	for i := 0; i < cap(sub)+10; i++ {
		h.Publish("org-1", dto.OrderEvent{Type: "order_created", OrderID: "ord-x"})
	}
	assert.Len(t, sub, cap(sub), "los eventos excedentes se descartan")
}

func TestHub_SubscriberCount(t *testing.T) {
	h := testHub()
	assert.Equal(t, 0, h.SubscriberCount("org-1"))

	s1 := h.subscribe("org-1")
	s2 := h.subscribe("org-1")
	assert.Equal(t, 2, h.SubscriberCount("org-1"))

	h.unsubscribe("org-1", s1)
	assert.Equal(t, 1, h.SubscriberCount("org-1"))

	h.unsubscribe("org-1", s2)
	assert.Equal(t, 0, h.SubscriberCount("org-1"),
		"la entrada de la organización se limpia al salir el último suscriptor")
}
