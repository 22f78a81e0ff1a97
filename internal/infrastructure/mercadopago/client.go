package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/strapped-store/tienda-api/internal/application/ports"
)

// Verificar en tiempo de compilación que Client implementa PaymentGateway.
var _ ports.PaymentGateway = (*Client)(nil)

const preferencesPath = "/checkout/preferences"

// Client adaptador que implementa PaymentGateway contra la API REST de
// Mercado Pago. Usa net/http de la librería estándar; no requiere el SDK oficial.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient construye el adaptador. baseURL normalmente es
// https://api.mercadopago.com; en tests se apunta a un servidor local.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ── Formato de alambre del API de preferencias ────────────────────────────────

// mpItem unit_price viaja como número JSON sin comillas; json.Number sobre el
// String() del decimal preserva la precisión exacta.
type mpItem struct {
	Title      string      `json:"title"`
	Quantity   int         `json:"quantity"`
	CurrencyID string      `json:"currency_id"`
	UnitPrice  json.Number `json:"unit_price"`
}

type mpBackURLs struct {
	Success string `json:"success"`
	Pending string `json:"pending"`
	Failure string `json:"failure"`
}

type mpPreferenceRequest struct {
	Items      []mpItem   `json:"items"`
	BackURLs   mpBackURLs `json:"back_urls"`
	AutoReturn string     `json:"auto_return"`
}

type mpPreferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// mpErrorResponse cuerpo de error del API de Mercado Pago.
type mpErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// CreatePreference crea la preferencia de checkout y devuelve id e init_point.
// Una sola llamada por invocación; los errores del gateway se devuelven como
// *ports.GatewayError con el mensaje del proveedor, nunca con la credencial.
func (c *Client) CreatePreference(ctx context.Context, req ports.PreferenceRequest) (*ports.Preference, error) {
	if c.accessToken == "" {
		return nil, fmt.Errorf("mercadopago: MP_ACCESS_TOKEN no configurado")
	}

	payload := mpPreferenceRequest{
		Items: make([]mpItem, 0, len(req.Items)),
		BackURLs: mpBackURLs{
			Success: req.BackURLs.Success,
			Pending: req.BackURLs.Pending,
			Failure: req.BackURLs.Failure,
		},
		AutoReturn: req.AutoReturn,
	}
	for _, it := range req.Items {
		payload.Items = append(payload.Items, mpItem{
			Title:      it.Title,
			Quantity:   it.Quantity,
			CurrencyID: it.CurrencyID,
			UnitPrice:  json.Number(it.UnitPrice.String()),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: serializar preferencia: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+preferencesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: crear HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("mercadopago: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("mercadopago: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ports.GatewayError{
			StatusCode: resp.StatusCode,
			Message:    gatewayMessage(rawBody),
		}
	}

	var pref mpPreferenceResponse
	if err := json.Unmarshal(rawBody, &pref); err != nil {
		return nil, fmt.Errorf("mercadopago: deserializar respuesta: %w", err)
	}
	if pref.InitPoint == "" {
		return nil, fmt.Errorf("mercadopago: respuesta sin init_point")
	}
	return &ports.Preference{ID: pref.ID, InitPoint: pref.InitPoint}, nil
}

// gatewayMessage extrae el mensaje del cuerpo de error; si no es JSON conocido
// devuelve el cuerpo crudo recortado para diagnóstico del operador.
func gatewayMessage(rawBody []byte) string {
	var errResp mpErrorResponse
	if err := json.Unmarshal(rawBody, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	msg := strings.TrimSpace(string(rawBody))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return msg
}
