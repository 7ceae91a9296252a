package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-customer-portal/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Routes(t *testing.T) {
	h, _ := newTestHandler(t, config.StructuredConfig{})
	router := h.Init()

	registered := make(map[string]bool)
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"GET /customer.json",
		"GET /customer/docs/*",
		"GET /api/version",
		"POST /customer/login",
		"POST /customer/register",
		"GET /customer/getInfo",
		"GET /customer/getPackages",
		"PUT /customer/updatePassword",
		"PUT /customer/updateProfile",
		"DELETE /customer/deleteProfile",
	} {
		assert.True(t, registered[want], "route %s is not registered", want)
	}
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t, config.StructuredConfig{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/customer/login"},
		{http.MethodPost, "/customer/getInfo"},
		{http.MethodGet, "/customer/deleteProfile"},
	} {
		rr := serve(t, h, tc.method, tc.path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_UnknownPath(t *testing.T) {
	h, _ := newTestHandler(t, config.StructuredConfig{})

	rr := serve(t, h, http.MethodGet, "/customer/unknown", nil, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t, config.StructuredConfig{})

	rr := serve(t, h, http.MethodGet, "/customer/getInfo", nil, map[string]string{traceIDHeader: "trace-42"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}

func TestOpenAPISpec(t *testing.T) {
	h, _ := newTestHandler(t, config.StructuredConfig{})

	rr := serve(t, h, http.MethodGet, openAPIPath, nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.NotEmpty(t, doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/customer/login")
	assert.Contains(t, doc.Paths["/customer/deleteProfile"], "delete")
}

func TestSwaggerUI(t *testing.T) {
	h, _ := newTestHandler(t, config.StructuredConfig{})

	rr := serve(t, h, http.MethodGet, "/customer/docs/index.html", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "swagger")
}
