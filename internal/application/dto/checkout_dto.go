package dto

import "github.com/shopspring/decimal"

// CheckoutRequest entrada del flujo de pago. El frontend envía el monto como
// número o como string numérico; decimal.Decimal acepta ambos y rechaza el resto.
// Un monto ausente o null queda en cero y se rechaza en la validación.
type CheckoutRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

// CheckoutResponse salida del flujo de pago: URL de redirección del gateway.
type CheckoutResponse struct {
	InitPoint string `json:"init_point"`
}
