// Package gateway is the validating tier: it exposes the same resource
// surface as the server, rejects malformed requests before they cross the
// wire, and forwards everything else to the server unchanged.
package gateway

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/JRaven13/shareit/util/httpx"
)

type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{base: strings.TrimRight(base, "/"), http: httpx.Client()}
}

// Forward relays the incoming request to the server, substituting body for
// the already-consumed request body, and copies the response back verbatim.
func (cl *Client) Forward(c echo.Context, body []byte) error {
	req := c.Request()
	target := cl.base + req.URL.Path
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}

	var payload io.Reader
	if body != nil {
		payload = bytes.NewReader(body)
	}
	proxyReq, err := http.NewRequestWithContext(req.Context(), req.Method, target, payload)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	for key, values := range req.Header {
		for _, v := range values {
			proxyReq.Header.Add(key, v)
		}
	}

	resp, err := cl.http.Do(proxyReq)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "shareit server unavailable"})
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Stream(resp.StatusCode, contentType, resp.Body)
}
