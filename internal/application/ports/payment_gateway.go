package ports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// PreferenceItem línea de una preferencia de pago.
type PreferenceItem struct {
	Title      string
	Quantity   int
	CurrencyID string
	UnitPrice  decimal.Decimal
}

// BackURLs destinos de redirección del pagador tras el pago.
type BackURLs struct {
	Success string
	Pending string
	Failure string
}

// PreferenceRequest descripción de la sesión de checkout que se crea en el
// gateway. Es efímera: se construye por request y no se persiste. El formato
// de alambre lo define el adaptador del gateway, no este puerto.
type PreferenceRequest struct {
	Items      []PreferenceItem
	BackURLs   BackURLs
	AutoReturn string
}

// Preference resultado de crear la preferencia en el gateway.
type Preference struct {
	ID        string
	InitPoint string
}

// PaymentGateway puerto hacia el gateway de pagos externo.
// Una sola operación; sin reintentos (los errores se propagan al caller).
type PaymentGateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error)
}

// GatewayError error del gateway con el mensaje del proveedor para diagnóstico.
// Nunca incluye credenciales ni estado interno.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway de pagos: HTTP %d: %s", e.StatusCode, e.Message)
}
