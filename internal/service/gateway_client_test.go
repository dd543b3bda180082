package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAuthKey = "test-auth-key"

func TestGatewayClient_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/user/login", r.URL.Path)
			assert.Equal(t, testAuthKey, r.Header.Get("authkey"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "buyer@example.com", body["user_name"])
			assert.Equal(t, "secret", body["pwd"])

			json.NewEncoder(w).Encode(map[string]string{
				"result":     "OK",
				"sessionkey": "remote-session-key",
				"cts":        "1718000000",
			})
		}))
		defer server.Close()

		client := NewGatewayClient(server.URL, testAuthKey, time.Second)
		reply, err := client.Login(ctx, "buyer@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "OK", reply.Result)
		assert.Equal(t, "remote-session-key", reply.SessionKey)
		assert.Equal(t, "1718000000", reply.CTS)
	})

	t.Run("Unauthorized status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewGatewayClient(server.URL, testAuthKey, time.Second)
		reply, err := client.Login(ctx, "buyer@example.com", "wrong")
		assert.Nil(t, reply)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	})

	t.Run("Connection refused", func(t *testing.T) {
		client := NewGatewayClient("http://127.0.0.1:1", testAuthKey, time.Second)
		_, err := client.Login(ctx, "buyer@example.com", "secret")
		assert.Error(t, err)
	})

	t.Run("Malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json at all"))
		}))
		defer server.Close()

		client := NewGatewayClient(server.URL, testAuthKey, time.Second)
		_, err := client.Login(ctx, "buyer@example.com", "secret")
		assert.Error(t, err)
	})
}

func TestGatewayClient_SubmitIntake(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/business/intake", r.URL.Path)
			assert.Equal(t, testAuthKey, r.Header.Get("authkey"))

			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Demo Company Ltd", r.FormValue("companyName"))

			json.NewEncoder(w).Encode(map[string]any{"success": true})
		}))
		defer server.Close()

		client := NewGatewayClient(server.URL, testAuthKey, time.Second)
		result, err := client.SubmitIntake(ctx, map[string]string{"companyName": "Demo Company Ltd"})
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("Rejected with message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Registration number is invalid"})
		}))
		defer server.Close()

		client := NewGatewayClient(server.URL, testAuthKey, time.Second)
		result, err := client.SubmitIntake(ctx, map[string]string{"companyName": "Demo"})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Registration number is invalid", result.Message)
	})
}

func TestGatewayClient_RegisterSeller(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seller/register", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Fresh Goods", r.FormValue("businessName"))

		var categories []string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("productCategories")), &categories))
		assert.Equal(t, []string{"electronics", "apparel"}, categories)

		var shipping []string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("shippingOptions")), &shipping))
		assert.Equal(t, []string{"courier"}, shipping)

		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	client := NewGatewayClient(server.URL, testAuthKey, time.Second)
	result, err := client.RegisterSeller(ctx, domain.SellerForm{
		Fields:            map[string]string{"businessName": "Fresh Goods"},
		ProductCategories: []string{"electronics", "apparel"},
		ShippingOptions:   []string{"courier"},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
}
