package checkout

import (
	"context"
	"strings"

	"github.com/strapped-store/tienda-api/internal/application/dto"
	"github.com/strapped-store/tienda-api/internal/application/ports"
	"github.com/strapped-store/tienda-api/internal/domain"
)

// Config parámetros fijos de la preferencia, definidos por la tienda.
type Config struct {
	FrontendURL string // base de los back_urls
	Title       string // título del único ítem
	Currency    string // currency_id, ej. "COP"
}

// CheckoutUseCase construye la preferencia de pago y la crea en el gateway.
// La preferencia es efímera: se arma por request y no se persiste. No hay
// clave de idempotencia: envíos duplicados crean preferencias duplicadas.
type CheckoutUseCase struct {
	gateway ports.PaymentGateway
	cfg     Config
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(gateway ports.PaymentGateway, cfg Config) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway, cfg: cfg}
}

// CreatePreference valida el monto y crea la preferencia con una sola llamada
// al gateway (sin reintentos). Montos cero, negativos o no numéricos se
// rechazan con ErrInvalidAmount antes de tocar el gateway.
func (uc *CheckoutUseCase) CreatePreference(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	frontend := strings.TrimRight(uc.cfg.FrontendURL, "/")
	req := ports.PreferenceRequest{
		Items: []ports.PreferenceItem{
			{
				Title:      uc.cfg.Title,
				Quantity:   1,
				CurrencyID: uc.cfg.Currency,
				UnitPrice:  in.Monto,
			},
		},
		BackURLs: ports.BackURLs{
			Success: frontend + "/success.html",
			Pending: frontend + "/pendiente.html",
			Failure: frontend + "/error.html",
		},
		AutoReturn: "approved",
	}

	pref, err := uc.gateway.CreatePreference(ctx, req)
	if err != nil {
		return nil, err
	}
	return &dto.CheckoutResponse{InitPoint: pref.InitPoint}, nil
}
