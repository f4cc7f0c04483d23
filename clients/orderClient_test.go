package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jubleh/storefront-core/models"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_Success(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orderId":"41","amount":600500}`))
	}))
	defer server.Close()

	client := NewOrderAPIClient(server.URL)
	order, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerName:    "Wanjiru Kamau",
		CustomerEmail:   "wanjiru@example.com",
		CustomerPhone:   "+254700000000",
		ShippingAddress: "Riverside Drive 12, Nairobi",
		Items:           []OrderItem{{ProductID: "p1", Qty: 2}},
		Shipping:        5,
	})

	require.NoError(t, err)
	require.Equal(t, models.Order{OrderID: "41", Amount: 600500}, order)

	items := received["items"].([]any)
	item := items[0].(map[string]any)
	require.Equal(t, "p1", item["productId"])
	require.Equal(t, float64(2), item["qty"])
	_, hasPrice := item["price"]
	require.False(t, hasPrice, "client prices are never sent as authoritative")
}

func TestCreateOrder_ServerErrorIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOrderAPIClient(server.URL)
	_, err := client.CreateOrder(context.Background(), CreateOrderRequest{})

	require.ErrorIs(t, err, models.ErrTransport)
}

func TestCreateOrder_UnreachableIsTransport(t *testing.T) {
	client := NewOrderAPIClient("http://127.0.0.1:1")
	_, err := client.CreateOrder(context.Background(), CreateOrderRequest{})

	require.ErrorIs(t, err, models.ErrTransport)
}

func TestCreateOrder_IncompleteResponseIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orderId":"","amount":0}`))
	}))
	defer server.Close()

	client := NewOrderAPIClient(server.URL)
	_, err := client.CreateOrder(context.Background(), CreateOrderRequest{})

	require.ErrorIs(t, err, models.ErrTransport)
}

func TestVerifyPayment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/verify", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "JUBLEH_41_abc", body["reference"])
		require.Equal(t, "41", body["orderId"])
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	client := NewOrderAPIClient(server.URL)
	require.NoError(t, client.VerifyPayment(context.Background(), "JUBLEH_41_abc", "41"))
}

func TestVerifyPayment_FailureIsVerificationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mismatch", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewOrderAPIClient(server.URL)
	err := client.VerifyPayment(context.Background(), "JUBLEH_41_abc", "41")

	require.ErrorIs(t, err, models.ErrVerification)
}
