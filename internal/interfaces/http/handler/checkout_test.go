package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutPayload() map[string]any {
	return map[string]any{
		"customer": map[string]any{
			"name":       "Maria Lopez",
			"phone":      "+5216641234567",
			"address":    "Av. Revolucion 123",
			"rent_date":  "2026-09-12",
			"event_type": "rent",
		},
		"items": []map[string]any{
			{"product_id": 1, "type": "rent", "quantity": 2},
		},
	}
}

func TestCheckoutEndpoint(t *testing.T) {
	productPayload := map[string]any{
		"name":          "Castle Jumper",
		"description":   "Big inflatable castle",
		"category":      "jumpers",
		"business_type": "rent",
		"rent_price":    150,
	}

	t.Run("submits the cart and returns the hand-off material", func(t *testing.T) {
		r, store := newTestRouter()
		doRequest(t, r, "POST", "/api/v1/products", productPayload)

		w, resp := doRequest(t, r, "POST", "/api/v1/checkout", checkoutPayload())
		require.Equal(t, http.StatusCreated, w.Code)

		checkout := resp["checkout"].(map[string]any)
		order := checkout["order"].(map[string]any)
		assert.Equal(t, float64(1), order["id"])
		// The price comes from the live catalog, never from the client
		assert.Equal(t, float64(300), order["total"])

		assert.Contains(t, checkout["message"], "*NEW ORDER - HERNANDEZ JUMPERS*")
		assert.NotContains(t, checkout["raw_message"], "*")
		assert.True(t, strings.HasPrefix(checkout["whatsapp_url"].(string), "https://wa.me/5216641234567?text="))

		snap := store.Snapshot()
		require.Len(t, snap.Orders, 1)
		require.Len(t, snap.Customers, 1)
	})

	t.Run("unknown product returns 404 and writes nothing", func(t *testing.T) {
		r, store := newTestRouter()
		w, resp := doRequest(t, r, "POST", "/api/v1/checkout", checkoutPayload())

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Product not found", resp["error"])
		assert.Empty(t, store.Snapshot().Orders)
	})

	t.Run("missing rent date returns 400 and writes nothing", func(t *testing.T) {
		r, store := newTestRouter()
		doRequest(t, r, "POST", "/api/v1/products", productPayload)

		bad := checkoutPayload()
		bad["customer"].(map[string]any)["rent_date"] = ""
		w, resp := doRequest(t, r, "POST", "/api/v1/checkout", bad)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please select the event date", resp["error"])
		assert.Empty(t, store.Snapshot().Orders)
	})

	t.Run("binding rejects a zero quantity", func(t *testing.T) {
		r, _ := newTestRouter()
		doRequest(t, r, "POST", "/api/v1/products", productPayload)

		bad := checkoutPayload()
		bad["items"] = []map[string]any{{"product_id": 1, "type": "rent", "quantity": 0}}
		w, _ := doRequest(t, r, "POST", "/api/v1/checkout", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("binding rejects an unknown item type", func(t *testing.T) {
		r, _ := newTestRouter()
		doRequest(t, r, "POST", "/api/v1/products", productPayload)

		bad := checkoutPayload()
		bad["items"] = []map[string]any{{"product_id": 1, "type": "lease", "quantity": 1}}
		w, _ := doRequest(t, r, "POST", "/api/v1/checkout", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	t.Run("get returns the stored settings", func(t *testing.T) {
		r, _ := newTestRouter()
		w, resp := doRequest(t, r, "GET", "/api/v1/settings", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["success"])
	})

	t.Run("put merges and the merged settings drive checkout", func(t *testing.T) {
		r, _ := newTestRouter()
		w, resp := doRequest(t, r, "PUT", "/api/v1/settings", map[string]any{
			"business_name":   "FIESTAS DEL VALLE",
			"whatsapp_number": "5219990000000",
		})
		require.Equal(t, http.StatusOK, w.Code)
		settings := resp["settings"].(map[string]any)
		assert.Equal(t, "FIESTAS DEL VALLE", settings["business_name"])

		doRequest(t, r, "POST", "/api/v1/products", map[string]any{
			"name":          "Castle Jumper",
			"description":   "Big inflatable castle",
			"category":      "jumpers",
			"business_type": "rent",
			"rent_price":    150,
		})
		w, resp = doRequest(t, r, "POST", "/api/v1/checkout", checkoutPayload())
		require.Equal(t, http.StatusCreated, w.Code)
		checkout := resp["checkout"].(map[string]any)
		assert.Contains(t, checkout["message"], "FIESTAS DEL VALLE")
		assert.Contains(t, checkout["whatsapp_url"], "wa.me/5219990000000")
	})
}
