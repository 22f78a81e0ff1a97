package dto

// ErrorResponse cuerpo de error HTTP estándar.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CheckoutErrorResponse cuerpo de error del flujo de pago.
// Conserva el contrato histórico del frontend: {error, detalle}.
type CheckoutErrorResponse struct {
	Error   string `json:"error"`
	Detalle string `json:"detalle,omitempty"`
}
