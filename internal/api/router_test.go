package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexZinkM/donate-action/donate"
	"github.com/AlexZinkM/donate-action/internal/client"
	"github.com/AlexZinkM/donate-action/internal/events"
	"github.com/AlexZinkM/donate-action/internal/handler"
	"github.com/AlexZinkM/donate-action/internal/metrics"

	"github.com/gagliardetto/solana-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticBlockhash struct {
	err error
}

func (s staticBlockhash) LatestBlockhash(ctx context.Context) (*client.Blockhash, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &client.Blockhash{Hash: solana.MustHashFromBase58("4sGjMW1sUnHzSxGspuhpqLDx6wiyjNtZAMdL4VZHirAn"), LastValidBlockHeight: 1}, nil
}

var testHeaders = ActionHeaders{Version: "2.4.1", BlockchainID: "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp"}

func newTestServer(t *testing.T, src donate.BlockhashSource) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recipient := solana.MustPublicKeyFromBase58("CBDv85peLsVvUzzc64zQjhr5doVCEa3jMxqrqNkPUocg")
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	h := handler.NewDonateHandler(
		donate.NewBuilder(src, recipient, "Abyscuit", logger),
		events.NopPublisher{}, m, logger,
		handler.Options{Meta: donate.MetaFor("Abyscuit", "/images/icon.png"), Cluster: "mainnet"},
	)
	srv := httptest.NewServer(SetupRouter(h, RouterConfig{Headers: testHeaders, Metrics: m, Gatherer: reg}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func assertActionHeaders(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,PUT,OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization, Content-Encoding, Accept-Encoding, X-Accept-Action-Version, X-Accept-Blockchain-Ids",
		resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "X-Action-Version, X-Blockchain-Ids", resp.Header.Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "2.4.1", resp.Header.Get("X-Action-Version"))
	assert.Equal(t, "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp", resp.Header.Get("X-Blockchain-Ids"))
}

func TestActionHeadersOnEveryResponse(t *testing.T) {
	srv := newTestServer(t, staticBlockhash{})
	sender := solana.NewWallet().PublicKey().String()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"get", http.MethodGet, "/api/donate", "", http.StatusOK},
		{"options", http.MethodOptions, "/api/donate", "", http.StatusOK},
		{"post", http.MethodPost, "/api/donate?amount=1", `{"account":"` + sender + `"}`, http.StatusOK},
		{"post invalid account", http.MethodPost, "/api/donate", `{"account":"x"}`, http.StatusBadRequest},
		{"post too small", http.MethodPost, "/api/donate?amount=0", `{"account":"` + sender + `"}`, http.StatusBadRequest},
		{"method not allowed", http.MethodDelete, "/api/donate", "", http.StatusMethodNotAllowed},
		{"actions.json", http.MethodGet, "/actions.json", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, tt.method, srv.URL+tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assertActionHeaders(t, resp)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		})
	}
}

func TestActionHeadersOnServerError(t *testing.T) {
	srv := newTestServer(t, staticBlockhash{err: assert.AnError})

	resp, _ := do(t, http.MethodPost, srv.URL+"/api/donate", `{"account":"`+solana.NewWallet().PublicKey().String()+`"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assertActionHeaders(t, resp)
}

func TestOptionsMatchesGet(t *testing.T) {
	srv := newTestServer(t, staticBlockhash{})

	_, getBody := do(t, http.MethodGet, srv.URL+"/api/donate", "")
	_, optBody := do(t, http.MethodOptions, srv.URL+"/api/donate", "")
	assert.JSONEq(t, getBody, optBody)
	assert.Contains(t, getBody, srv.URL+"/api/donate?amount=0.1")
}

func TestAuxiliaryRoutes(t *testing.T) {
	srv := newTestServer(t, staticBlockhash{})

	resp, body := do(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/donate/qr", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	do(t, http.MethodGet, srv.URL+"/api/donate", "")
	resp, body = do(t, http.MethodGet, srv.URL+"/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "http_requests_total")
}
