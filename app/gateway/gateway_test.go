package gateway_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/JRaven13/shareit/app/gateway"
)

type captured struct {
	method string
	uri    string
	body   string
	sharer string
}

// newProxy wires a gateway in front of a stub backend that records what
// reaches it.
func newProxy(t *testing.T) (*echo.Echo, *captured) {
	t.Helper()
	var last captured
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		last = captured{
			method: r.Method,
			uri:    r.URL.RequestURI(),
			body:   string(b),
			sharer: r.Header.Get("X-Sharer-User-Id"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"id":1}`)
	}))
	t.Cleanup(backend.Close)

	e := echo.New()
	gateway.Register(e, &gateway.Gateway{
		Client: gateway.NewClient(backend.URL),
		V:      validator.New(),
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return e, &last
}

func send(e *echo.Echo, method, path, sharer, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sharer != "" {
		req.Header.Set("X-Sharer-User-Id", sharer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestForwardKeepsBodyQueryAndHeaders(t *testing.T) {
	e, last := newProxy(t)

	body := `{"name":"drill","description":"strong","available":true}`
	rec := send(e, http.MethodPost, "/items", "7", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `{"id":1}`, rec.Body.String())
	require.Equal(t, body, last.body, "payload is forwarded byte for byte")
	require.Equal(t, "7", last.sharer)

	rec = send(e, http.MethodGet, "/items/search?text=drill&from=0&size=5", "7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "/items/search?text=drill&from=0&size=5", last.uri)
}

func TestCreateUserValidation(t *testing.T) {
	e, last := newProxy(t)

	for _, body := range []string{
		`{`,
		`{"name":"Ann"}`,
		`{"email":"ann@example.com"}`,
		`{"name":"Ann","email":"not-an-email"}`,
	} {
		last.method = ""
		rec := send(e, http.MethodPost, "/users", "", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.Empty(t, last.method, "rejected request must not reach the server")
	}

	rec := send(e, http.MethodPost, "/users", "", `{"name":"Ann","email":"ann@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateItemRequiresAvailable(t *testing.T) {
	e, _ := newProxy(t)
	rec := send(e, http.MethodPost, "/items", "1", `{"name":"drill","description":"strong"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// false is a value, not an omission
	rec = send(e, http.MethodPost, "/items", "1", `{"name":"drill","description":"strong","available":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateBookingWindow(t *testing.T) {
	e, _ := newProxy(t)

	stamp := func(d time.Duration) string {
		return time.Now().Add(d).UTC().Format(time.RFC3339Nano)
	}
	cases := []struct {
		name string
		body string
		want int
	}{
		{"valid", fmt.Sprintf(`{"itemId":1,"start":%q,"end":%q}`, stamp(time.Hour), stamp(2*time.Hour)), http.StatusOK},
		{"end before start", fmt.Sprintf(`{"itemId":1,"start":%q,"end":%q}`, stamp(2*time.Hour), stamp(time.Hour)), http.StatusBadRequest},
		{"start in past", fmt.Sprintf(`{"itemId":1,"start":%q,"end":%q}`, stamp(-time.Hour), stamp(time.Hour)), http.StatusBadRequest},
		{"missing end", fmt.Sprintf(`{"itemId":1,"start":%q}`, stamp(time.Hour)), http.StatusBadRequest},
		{"missing item", fmt.Sprintf(`{"start":%q,"end":%q}`, stamp(time.Hour), stamp(2*time.Hour)), http.StatusBadRequest},
	}
	for _, c := range cases {
		rec := send(e, http.MethodPost, "/bookings", "1", c.body)
		require.Equal(t, c.want, rec.Code, c.name)
	}

	equal := stamp(time.Hour)
	rec := send(e, http.MethodPost, "/bookings", "1", fmt.Sprintf(`{"itemId":1,"start":%q,"end":%q}`, equal, equal))
	require.Equal(t, http.StatusBadRequest, rec.Code, "zero-length window")
}

func TestPaginationGuards(t *testing.T) {
	e, last := newProxy(t)

	for _, path := range []string{
		"/items?from=-1",
		"/items?size=0",
		"/bookings?from=x",
		"/requests/all?size=-5",
	} {
		rec := send(e, http.MethodGet, path, "1", "")
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
	}

	// the state filter is the server's concern, not the gateway's
	rec := send(e, http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", "1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "/bookings?state=UNSUPPORTED_STATUS", last.uri)
}

func TestApprovedParamGuard(t *testing.T) {
	e, _ := newProxy(t)
	rec := send(e, http.MethodPatch, "/bookings/1?approved=maybe", "1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(e, http.MethodPatch, "/bookings/1?approved=false", "1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSharerHeaderGuard(t *testing.T) {
	e, last := newProxy(t)

	rec := send(e, http.MethodGet, "/items", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(e, http.MethodGet, "/items", "-2", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, last.method)

	// user management is open
	rec = send(e, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBackendDown(t *testing.T) {
	e := echo.New()
	gateway.Register(e, &gateway.Gateway{
		Client: gateway.NewClient("http://127.0.0.1:1"),
		V:      validator.New(),
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	rec := send(e, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestBackendErrorsPassThrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"item not found"}`)
	}))
	defer backend.Close()

	e := echo.New()
	gateway.Register(e, &gateway.Gateway{
		Client: gateway.NewClient(backend.URL),
		V:      validator.New(),
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	rec := send(e, http.MethodGet, "/items/9", "1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, `{"error":"item not found"}`, rec.Body.String())
}
