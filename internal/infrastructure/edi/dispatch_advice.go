// Package edi parsea los avisos de despacho XML que envían los proveedores
// (formato DispatchAdvice simplificado) y los convierte en órdenes en draft.
//
// Documento esperado:
//
//	<DispatchAdvice>
//	  <Supplier id="SUP-001">Distribuidora Andina</Supplier>
//	  <Restaurant id="REST-009"/>
//	  <Currency>COP</Currency>
//	  <ExpectedDelivery>2026-09-02</ExpectedDelivery>
//	  <Lines>
//	    <Line code="TOM-01" name="Tomate chonto" unit="kg" qty="12.5" price="3800"/>
//	  </Lines>
//	</DispatchAdvice>
package edi

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/application/orders"
)

var _ orders.DispatchAdviceParser = (*DispatchAdviceParser)(nil)

// DispatchAdviceParser parser basado en etree.
type DispatchAdviceParser struct{}

// NewDispatchAdviceParser construye el parser.
func NewDispatchAdviceParser() *DispatchAdviceParser {
	return &DispatchAdviceParser{}
}

// Parse valida el documento y lo traduce a un CreateOrderRequest.
func (p *DispatchAdviceParser) Parse(data []byte) (*dto.CreateOrderRequest, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("edi: XML inválido: %w", err)
	}
	root := doc.SelectElement("DispatchAdvice")
	if root == nil {
		return nil, fmt.Errorf("edi: falta el elemento raíz DispatchAdvice")
	}

	supplier := root.SelectElement("Supplier")
	if supplier == nil || supplier.SelectAttrValue("id", "") == "" {
		return nil, fmt.Errorf("edi: falta Supplier con atributo id")
	}
	restaurant := root.SelectElement("Restaurant")
	if restaurant == nil || restaurant.SelectAttrValue("id", "") == "" {
		return nil, fmt.Errorf("edi: falta Restaurant con atributo id")
	}

	req := &dto.CreateOrderRequest{
		RestaurantID: restaurant.SelectAttrValue("id", ""),
		SupplierID:   supplier.SelectAttrValue("id", ""),
		SupplierName: supplier.Text(),
	}
	if cur := root.SelectElement("Currency"); cur != nil {
		req.Currency = cur.Text()
	}
	if ed := root.SelectElement("ExpectedDelivery"); ed != nil && ed.Text() != "" {
		t, err := time.Parse("2006-01-02", ed.Text())
		if err != nil {
			return nil, fmt.Errorf("edi: ExpectedDelivery inválido: %w", err)
		}
		req.ExpectedDelivery = &t
	}

	lines := root.SelectElement("Lines")
	if lines == nil {
		return nil, fmt.Errorf("edi: falta el bloque Lines")
	}
	for _, line := range lines.SelectElements("Line") {
		item, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		req.Items = append(req.Items, *item)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("edi: el aviso no contiene líneas")
	}
	return req, nil
}

func parseLine(line *etree.Element) (*dto.OrderItemInput, error) {
	code := line.SelectAttrValue("code", "")
	if code == "" {
		return nil, fmt.Errorf("edi: línea sin atributo code")
	}
	qty, err := decimal.NewFromString(line.SelectAttrValue("qty", ""))
	if err != nil || qty.Sign() <= 0 {
		return nil, fmt.Errorf("edi: cantidad inválida en línea %s", code)
	}
	price, err := decimal.NewFromString(line.SelectAttrValue("price", "0"))
	if err != nil || price.Sign() < 0 {
		return nil, fmt.Errorf("edi: precio inválido en línea %s", code)
	}
	return &dto.OrderItemInput{
		ItemCode:  code,
		Name:      line.SelectAttrValue("name", code),
		Unit:      line.SelectAttrValue("unit", ""),
		Quantity:  qty,
		UnitPrice: price,
	}, nil
}
