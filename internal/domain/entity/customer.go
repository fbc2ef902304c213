package entity

import "time"

// Customer cliente de la plataforma (restaurante u operador de varios locales).
// HierarchyNodeID lo ancla opcionalmente a un nodo de su organización.
type Customer struct {
	ID              string
	OrgID           string
	Name            string
	TaxID           string
	Email           string
	Phone           string
	Address         string
	HierarchyNodeID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
