package handlers_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledgerwriter/internal/auth"
	"ledgerwriter/internal/handlers"
	"ledgerwriter/internal/ledger"
	"ledgerwriter/internal/middleware"
	"ledgerwriter/internal/models"
	"ledgerwriter/internal/routes"
	"ledgerwriter/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const localRoutingNum = "883745000"

type stubFetcher struct {
	balance int64
	err     error
}

func (s *stubFetcher) Balance(_ context.Context, _, _ string) (int64, error) {
	return s.balance, s.err
}

func signToken(t *testing.T, key *rsa.PrivateKey, acct string) string {
	t.Helper()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		AccountNum: acct,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newTestApp(t *testing.T, key *rsa.PrivateKey, fetcher *stubFetcher, appender ledger.Appender) *fiber.App {
	t.Helper()
	svc := transaction.NewService(localRoutingNum, fetcher, appender, nil)
	app := fiber.New()
	routes.SetupRoutes(app,
		middleware.NewAuthMiddleware(auth.NewVerifier(&key.PublicKey)),
		handlers.NewTransactionHandler(svc),
		handlers.NewHealthHandler("v0.5.0", nil, nil),
	)
	return app
}

func postTransaction(t *testing.T, app *fiber.App, token string, tx models.Transaction) (int, string) {
	t.Helper()
	body, err := json.Marshal(tx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(respBody)
}

func localTx(amount int64) models.Transaction {
	return models.Transaction{
		FromAccountNum: "1234567890",
		FromRoutingNum: localRoutingNum,
		ToAccountNum:   "0987654321",
		ToRoutingNum:   localRoutingNum,
		Amount:         amount,
		Timestamp:      1614159650.5,
	}
}

func TestSubmitTransaction(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	token := signToken(t, key, "1234567890")

	t.Run("commit", func(t *testing.T) {
		appender := ledger.NewMemoryAppender()
		app := newTestApp(t, key, &stubFetcher{balance: 100}, appender)

		status, body := postTransaction(t, app, token, localTx(50))
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "ok", body)
		assert.Len(t, appender.Entries(), 1)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		appender := ledger.NewMemoryAppender()
		app := newTestApp(t, key, &stubFetcher{balance: 20}, appender)

		status, body := postTransaction(t, app, token, localTx(50))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "insufficient balance", body)
		assert.Empty(t, appender.Entries())
	})

	t.Run("invalid amount", func(t *testing.T) {
		app := newTestApp(t, key, &stubFetcher{balance: 100}, ledger.NewMemoryAppender())

		status, body := postTransaction(t, app, token, localTx(-5))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid amount", body)
	})

	t.Run("wrong owner", func(t *testing.T) {
		app := newTestApp(t, key, &stubFetcher{balance: 100}, ledger.NewMemoryAppender())

		otherToken := signToken(t, key, "5555555555")
		status, body := postTransaction(t, app, otherToken, localTx(50))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "not authorized", body)
	})

	t.Run("bad token", func(t *testing.T) {
		appender := ledger.NewMemoryAppender()
		app := newTestApp(t, key, &stubFetcher{balance: 100}, appender)

		otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		forged := signToken(t, otherKey, "1234567890")

		status, body := postTransaction(t, app, forged, localTx(50))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "not authorized", body)
		assert.Empty(t, appender.Entries())
	})

	t.Run("missing token", func(t *testing.T) {
		app := newTestApp(t, key, &stubFetcher{balance: 100}, ledger.NewMemoryAppender())

		status, body := postTransaction(t, app, "", localTx(50))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "not authorized", body)
	})

	t.Run("foreign source deposit", func(t *testing.T) {
		appender := ledger.NewMemoryAppender()
		// No balance backend at all: foreign-source transfers never query it.
		app := newTestApp(t, key, &stubFetcher{err: assert.AnError}, appender)

		tx := localTx(50)
		tx.FromRoutingNum = "111111111"
		tx.FromAccountNum = "9999999999"

		status, body := postTransaction(t, app, token, tx)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "ok", body)
		assert.Len(t, appender.Entries(), 1)
	})

	t.Run("malformed body", func(t *testing.T) {
		app := newTestApp(t, key, &stubFetcher{balance: 100}, ledger.NewMemoryAppender())

		req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHealthEndpoints(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	app := newTestApp(t, key, &stubFetcher{}, ledger.NewMemoryAppender())

	for _, tt := range []struct {
		path string
		body string
	}{
		{"/version", "v0.5.0"},
		{"/ready", "ok"},
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, tt.body, string(body))
	}
}
