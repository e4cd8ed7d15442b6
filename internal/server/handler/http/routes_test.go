package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avilov/datavault/internal/auth"
	"github.com/avilov/datavault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSecret = []byte("test-secret")

// newTestRouter mounts the full router over the given fakes. Handlers whose
// fake is nil are still routable but must not be reached by the test.
func newTestRouter(authSvc AuthService, vaultSvc VaultService, recordSvc RecordService, accessSvc AccessService, heightSvc HeightService) http.Handler {
	return NewRouter(
		&AuthHandler{AuthService: authSvc},
		&VaultHandler{VaultService: vaultSvc},
		&RecordHandler{RecordService: recordSvc},
		&AccessHandler{AccessService: accessSvc},
		&AdminHandler{HeightService: heightSvc},
		zap.NewNop(),
		testSecret,
	)
}

func bearerFor(t *testing.T, accountID string) string {
	t.Helper()
	token, err := auth.GenerateToken(accountID, testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router http.Handler, method, target, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil, nil)

	rr := doJSON(t, router, http.MethodPost, "/api/vault", `{"fee":100}`, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_RejectsNonJSONBody(t *testing.T) {
	router := newTestRouter(nil, nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/vault", strings.NewReader("fee=100"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", bearerFor(t, "acc-1"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}

func TestRouter_PublicEndpointsSkipAuth(t *testing.T) {
	authSvc := &fakeAuthService{
		RegisterFunc: func(_ context.Context, login, password string) (*models.Account, error) {
			return &models.Account{ID: "acc-1", Login: login}, nil
		},
		LoginFunc: func(context.Context, string, string) (string, error) {
			return "some-token", nil
		},
	}
	router := newTestRouter(authSvc, nil, nil, nil, nil)

	rr := doJSON(t, router, http.MethodPost, "/api/register", `{"login":"alice","password":"s3cret"}`, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/login", `{"login":"alice","password":"s3cret"}`, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "some-token")
}
