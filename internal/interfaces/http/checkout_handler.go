package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/strapped-store/tienda-api/internal/application/checkout"
	"github.com/strapped-store/tienda-api/internal/application/dto"
	"github.com/strapped-store/tienda-api/internal/application/ports"
	"github.com/strapped-store/tienda-api/internal/domain"
)

// CheckoutHandler maneja la creación de preferencias de pago.
// Conserva el contrato histórico del frontend: {init_point} y {error, detalle}.
type CheckoutHandler struct {
	uc *checkout.CheckoutUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// CreatePreference valida el monto, crea la preferencia en el gateway y
// devuelve el init_point. Cuerpo no deserializable (monto no numérico
// incluido) y montos no positivos responden 400 "Monto inválido".
func (h *CheckoutHandler) CreatePreference(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CheckoutErrorResponse{Error: "Monto inválido"})
	}

	out, err := h.uc.CreatePreference(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.CheckoutErrorResponse{Error: "Monto inválido"})
		}
		var gwErr *ports.GatewayError
		if errors.As(err, &gwErr) {
			log.Error().Int("status", gwErr.StatusCode).Str("message", gwErr.Message).Msg("crear preferencia: error del gateway")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.CheckoutErrorResponse{
				Error:   "Error interno al crear preferencia",
				Detalle: gwErr.Message,
			})
		}
		log.Error().Err(err).Msg("crear preferencia: error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.CheckoutErrorResponse{
			Error:   "Error interno al crear preferencia",
			Detalle: err.Error(),
		})
	}
	return c.JSON(out)
}
