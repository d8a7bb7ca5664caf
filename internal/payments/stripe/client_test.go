package stripe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayStub(t *testing.T, capture *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got := map[string]string{}
		for k := range r.Form {
			got[k] = r.FormValue(k)
		}
		*capture = got
		json.NewEncoder(w).Encode(Intent{
			ID:           "pi_test_1",
			Status:       "requires_payment_method",
			ClientSecret: "cs_test_1",
		})
	}))
}

func TestCreateIntent_MinorUnitsRounded(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{19.99, "1999"},
		{49.50, "4950"},
		{10, "1000"},
		{0.07, "7"},
	}
	for _, tc := range tests {
		var got map[string]string
		srv := newGatewayStub(t, &got)

		c := NewClient("sk_test_key", "whsec_test")
		c.baseURL = srv.URL
		_, err := c.CreateIntent(context.Background(), tc.amount, "USD")
		srv.Close()

		require.NoError(t, err)
		assert.Equal(t, tc.want, got["amount"], "amount %v", tc.amount)
		assert.Equal(t, "usd", got["currency"])
	}
}
