package edi_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suministros-api/internal/infrastructure/edi"
)

const avisoValido = `<?xml version="1.0" encoding="UTF-8"?>
<DispatchAdvice>
  <Supplier id="SUP-001">Distribuidora Andina</Supplier>
  <Restaurant id="REST-009"/>
  <Currency>COP</Currency>
  <ExpectedDelivery>2026-09-02</ExpectedDelivery>
  <Lines>
    <Line code="TOM-01" name="Tomate chonto" unit="kg" qty="12.5" price="3800"/>
    <Line code="ACE-02" name="Aceite de girasol" unit="l" qty="4" price="21500"/>
  </Lines>
</DispatchAdvice>`

func TestDispatchAdvice_ParseCompleto(t *testing.T) {
	p := edi.NewDispatchAdviceParser()

	req, err := p.Parse([]byte(avisoValido))
	require.NoError(t, err)

	assert.Equal(t, "REST-009", req.RestaurantID)
	assert.Equal(t, "SUP-001", req.SupplierID)
	assert.Equal(t, "Distribuidora Andina", req.SupplierName)
	assert.Equal(t, "COP", req.Currency)
	require.NotNil(t, req.ExpectedDelivery)
	assert.Equal(t, "2026-09-02", req.ExpectedDelivery.Format("2006-01-02"))

	require.Len(t, req.Items, 2)
	assert.Equal(t, "TOM-01", req.Items[0].ItemCode)
	assert.Equal(t, "kg", req.Items[0].Unit)
	assert.True(t, req.Items[0].Quantity.Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, req.Items[1].UnitPrice.Equal(decimal.NewFromInt(21500)))
}

func TestDispatchAdvice_LineaSinNombre_UsaElCodigo(t *testing.T) {
	p := edi.NewDispatchAdviceParser()
	req, err := p.Parse([]byte(`<DispatchAdvice>
		<Supplier id="SUP-001"/>
		<Restaurant id="REST-009"/>
		<Lines><Line code="TOM-01" qty="1" price="100"/></Lines>
	</DispatchAdvice>`))
	require.NoError(t, err)
	assert.Equal(t, "TOM-01", req.Items[0].Name)
}

func TestDispatchAdvice_DocumentosInvalidos(t *testing.T) {
	casos := []struct {
		nombre string
		xml    string
	}{
		{"no es XML", `esto no es xml <`},
		{"raíz equivocada", `<OtraCosa/>`},
		{"sin Supplier", `<DispatchAdvice><Restaurant id="R"/><Lines><Line code="A" qty="1"/></Lines></DispatchAdvice>`},
		{"Supplier sin id", `<DispatchAdvice><Supplier/><Restaurant id="R"/><Lines><Line code="A" qty="1"/></Lines></DispatchAdvice>`},
		{"sin Restaurant", `<DispatchAdvice><Supplier id="S"/><Lines><Line code="A" qty="1"/></Lines></DispatchAdvice>`},
		{"sin bloque Lines", `<DispatchAdvice><Supplier id="S"/><Restaurant id="R"/></DispatchAdvice>`},
		{"Lines vacío", `<DispatchAdvice><Supplier id="S"/><Restaurant id="R"/><Lines/></DispatchAdvice>`},
		{"línea sin code", `<DispatchAdvice><Supplier id="S"/><Restaurant id="R"/><Lines><Line qty="1"/></Lines></DispatchAdvice>`},
		{"cantidad cero", `<DispatchAdvice><Supplier id="S"/><Restaurant id="R"/><Lines><Line code="A" qty="0"/></Lines></DispatchAdvice>`},
		{"cantidad no numérica", `<DispatchAdvice><Supplier id="S"/><Restaurant id="R"/><Lines><Line code="A" qty="doce"/></Lines></DispatchAdvice>`},
		{"precio negativo", `<DispatchAdvice><Supplier id="S"/><Restaurant id="R"/><Lines><Line code="A" qty="1" price="-5"/></Lines></DispatchAdvice>`},
		{"fecha inválida", `<DispatchAdvice><Supplier id="S"/><Restaurant id="R"/><ExpectedDelivery>mañana</ExpectedDelivery><Lines><Line code="A" qty="1"/></Lines></DispatchAdvice>`},
	}
	p := edi.NewDispatchAdviceParser()
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := p.Parse([]byte(c.xml))
			assert.Error(t, err)
		})
	}
}
