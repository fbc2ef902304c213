package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/suministros-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_CicloFeliz(t *testing.T) {
	pasos := []struct{ from, to string }{
		{entity.OrderDraft, entity.OrderSubmitted},
		{entity.OrderSubmitted, entity.OrderConfirmed},
		{entity.OrderConfirmed, entity.OrderInTransit},
		{entity.OrderInTransit, entity.OrderDelivered},
	}
	for _, p := range pasos {
		assert.True(t, entity.CanTransition(p.from, p.to), "%s → %s debe permitirse", p.from, p.to)
	}
}

func TestCanTransition_CancelacionDesdeNoTerminales(t *testing.T) {
	for _, from := range []string{
		entity.OrderDraft, entity.OrderSubmitted, entity.OrderConfirmed, entity.OrderInTransit,
	} {
		assert.True(t, entity.CanTransition(from, entity.OrderCancelled),
			"%s → cancelled debe permitirse", from)
	}

	// Los estados terminales no se cancelan.
	assert.False(t, entity.CanTransition(entity.OrderDelivered, entity.OrderCancelled))
	assert.False(t, entity.CanTransition(entity.OrderCancelled, entity.OrderCancelled))
}

func TestCanTransition_SaltosYRetrocesosProhibidos(t *testing.T) {
	casos := []struct{ from, to string }{
		{entity.OrderDraft, entity.OrderConfirmed},    // salto
		{entity.OrderDraft, entity.OrderDelivered},    // salto largo
		{entity.OrderConfirmed, entity.OrderDraft},    // retroceso
		{entity.OrderDelivered, entity.OrderInTransit}, // retroceso desde terminal
		{entity.OrderCancelled, entity.OrderDraft},    // revivir cancelada
		{entity.OrderSubmitted, entity.OrderSubmitted}, // mismo estado
	}
	for _, c := range casos {
		assert.False(t, entity.CanTransition(c.from, c.to), "%s → %s no debe permitirse", c.from, c.to)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotal_SumaSubtotales(t *testing.T) {
	items := []entity.OrderItem{
		{ItemCode: "TOM-01", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromFloat(2.50)},
		{ItemCode: "ACE-02", Quantity: decimal.NewFromFloat(1.5), UnitPrice: decimal.NewFromInt(40)},
	}
	// 10*2.50 + 1.5*40 = 25 + 60 = 85
	assert.True(t, entity.ComputeTotal(items).Equal(decimal.NewFromInt(85)),
		"total esperado 85, se obtuvo %s", entity.ComputeTotal(items))
}

func TestComputeTotal_SinLineas(t *testing.T) {
	assert.True(t, entity.ComputeTotal(nil).IsZero())
}

func TestOrderItem_Subtotal(t *testing.T) {
	it := entity.OrderItem{Quantity: decimal.NewFromFloat(0.5), UnitPrice: decimal.NewFromInt(100)}
	assert.True(t, it.Subtotal().Equal(decimal.NewFromInt(50)))
}
