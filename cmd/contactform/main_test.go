package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgconfig "github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmd_Valid(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, "validate",
		"--first-name", "Jane", "--last-name", "Doe", "--email", "jane@example.com",
		"--message", "Hi", "--query-type", "general", "--consent")

	require.NoError(t, err)
	assert.Contains(t, out, "CONTROL")
	assert.Contains(t, out, "first-name")
	assert.Contains(t, out, "valid")
	assert.NotContains(t, out, "invalid")
}

func TestValidateCmd_Invalid(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, "validate", "--first-name", "Jane", "--email", "abc@def")

	require.ErrorIs(t, err, errSubmissionInvalid)
	assert.Contains(t, out, "Please enter a valid email address")
	assert.Contains(t, out, "Please select a query type")
	assert.Contains(t, out, "To submit this form, please consent to being contacted")
	assert.Contains(t, out, "focus last-name")
}

func testConfig(t *testing.T) config {
	t.Helper()
	var cfg config
	require.NoError(t, pkgconfig.Parse(&cfg))
	cfg.Contact.RateCapacity = 1
	cfg.Contact.RateInterval = time.Hour
	return cfg
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	var cfg config
	require.NoError(t, pkgconfig.Parse(&cfg))

	assert.Equal(t, "contactform", cfg.App.Name)
	assert.Equal(t, 8*time.Second, cfg.Contact.ToastDuration)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestConfig_WriteTimeoutMustOutlastToast(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	require.NoError(t, cfg.validate())

	cfg.HTTP.WriteTimeout = cfg.Contact.ToastDuration
	assert.ErrorIs(t, cfg.validate(), errWriteTimeoutTooShort)

	cfg.HTTP.WriteTimeout = 0
	assert.NoError(t, cfg.validate())

	cfg = testConfig(t)
	cfg.HTTP.WriteTimeout = 5 * time.Second
	err := serve(context.Background(), cfg)
	assert.ErrorIs(t, err, errWriteTimeoutTooShort)
}

func TestValidateCmd_QueryTypeUsage(t *testing.T) {
	t.Parallel()

	flag := newValidateCmd().Flags().Lookup("query-type")
	require.NotNil(t, flag)
	assert.Equal(t, "query type (general, support)", flag.Usage)
}

func TestNewRouter(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)

	router, err := newRouter(testConfig(t), slog.New(slog.DiscardHandler), store)
	require.NoError(t, err)

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<form")
	})

	t.Run("submit is rate limited", func(t *testing.T) {
		post := func() *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"first_name": {"Jane"}}.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			return rec
		}

		assert.Equal(t, http.StatusUnprocessableEntity, post().Code)

		rec := post()
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})
}
