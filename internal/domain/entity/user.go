package entity

import "time"

// Roles de usuario dentro de una organización.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleReceiver = "receiver" // personal de bodega: recibe mercancía
)

// NotificationPrefs preferencias de notificación del perfil.
type NotificationPrefs struct {
	OrderUpdates  bool `json:"order_updates"`
	PaymentAlerts bool `json:"payment_alerts"`
	WeeklyDigest  bool `json:"weekly_digest"`
}

// User usuario de la plataforma, siempre asociado a una organización (tenant).
type User struct {
	ID            string
	OrgID         string
	Email         string
	PasswordHash  string
	Name          string
	Phone         string
	Role          string
	Status        string // active | disabled
	Notifications NotificationPrefs
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
