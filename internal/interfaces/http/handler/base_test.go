package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogapp "github.com/hjumpers/backend/internal/application/catalog"
	checkoutapp "github.com/hjumpers/backend/internal/application/checkout"
	partnerapp "github.com/hjumpers/backend/internal/application/partner"
	settingsapp "github.com/hjumpers/backend/internal/application/settings"
	tradeapp "github.com/hjumpers/backend/internal/application/trade"
	"github.com/hjumpers/backend/internal/infrastructure/persistence"
	"github.com/hjumpers/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// newTestRouter wires every handler against a fresh in-memory store, the same
// shape the server assembles at boot
func newTestRouter() (*gin.Engine, *persistence.MemoryStore) {
	store := persistence.NewMemoryStore()
	log := zap.NewNop()

	products := catalogapp.NewProductService(store, log)
	orders := tradeapp.NewOrderService(store, log)
	customers := partnerapp.NewCustomerService(store, log)
	settings := settingsapp.NewService(store, log)
	checkout := checkoutapp.NewService(orders, store, checkoutapp.Config{
		BusinessName:   "HERNANDEZ JUMPERS",
		WhatsAppNumber: "5216641234567",
	}, log)

	r := gin.New()
	api := r.Group("/api/v1")
	NewProductHandler(products).RegisterRoutes(api)
	NewOrderHandler(orders).RegisterRoutes(api)
	NewCustomerHandler(customers).RegisterRoutes(api)
	NewSettingsHandler(settings).RegisterRoutes(api)
	NewCheckoutHandler(checkout, products).RegisterRoutes(api)
	return r, store
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}
