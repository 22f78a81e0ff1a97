package mercadopago_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strapped-store/tienda-api/internal/application/ports"
	"github.com/strapped-store/tienda-api/internal/infrastructure/mercadopago"
)

func preferenceRequest() ports.PreferenceRequest {
	return ports.PreferenceRequest{
		Items: []ports.PreferenceItem{
			{Title: "Compra Strapped", Quantity: 1, CurrencyID: "COP", UnitPrice: decimal.RequireFromString("45000")},
		},
		BackURLs: ports.BackURLs{
			Success: "https://front/success.html",
			Pending: "https://front/pendiente.html",
			Failure: "https://front/error.html",
		},
		AutoReturn: "approved",
	}
}

func TestCreatePreference_RequestYRespuesta(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"pref-123","init_point":"https://www.mercadopago.com/init/pref-123"}`))
	}))
	defer srv.Close()

	client := mercadopago.NewClient(srv.URL, "TEST-token-123")
	pref, err := client.CreatePreference(context.Background(), preferenceRequest())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/checkout/preferences", gotPath)
	assert.Equal(t, "Bearer TEST-token-123", gotAuth)

	items, ok := gotBody["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Compra Strapped", item["title"])
	assert.Equal(t, float64(1), item["quantity"])
	assert.Equal(t, "COP", item["currency_id"])
	assert.Equal(t, float64(45000), item["unit_price"], "unit_price viaja como número JSON")

	backURLs := gotBody["back_urls"].(map[string]any)
	assert.Equal(t, "https://front/success.html", backURLs["success"])
	assert.Equal(t, "approved", gotBody["auto_return"])

	assert.Equal(t, "pref-123", pref.ID)
	assert.Equal(t, "https://www.mercadopago.com/init/pref-123", pref.InitPoint)
}

func TestCreatePreference_ErrorDelGateway_MapeaMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid access token","error":"bad_request","status":400}`))
	}))
	defer srv.Close()

	client := mercadopago.NewClient(srv.URL, "TEST-token-123")
	_, err := client.CreatePreference(context.Background(), preferenceRequest())
	require.Error(t, err)

	var gwErr *ports.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusBadRequest, gwErr.StatusCode)
	assert.Equal(t, "invalid access token", gwErr.Message)
	assert.NotContains(t, err.Error(), "TEST-token-123", "la credencial nunca aparece en el error")
}

func TestCreatePreference_ErrorNoJSON_CuerpoCrudo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	client := mercadopago.NewClient(srv.URL, "TEST-token-123")
	_, err := client.CreatePreference(context.Background(), preferenceRequest())

	var gwErr *ports.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "upstream unavailable", gwErr.Message)
}

func TestCreatePreference_SinToken_Error(t *testing.T) {
	client := mercadopago.NewClient("https://api.mercadopago.com", "")
	_, err := client.CreatePreference(context.Background(), preferenceRequest())
	assert.Error(t, err)
}

func TestCreatePreference_RespuestaSinInitPoint_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pref-123"}`))
	}))
	defer srv.Close()

	client := mercadopago.NewClient(srv.URL, "TEST-token-123")
	_, err := client.CreatePreference(context.Background(), preferenceRequest())
	assert.Error(t, err)
}
