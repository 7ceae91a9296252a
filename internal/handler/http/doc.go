// Package http implements the HTTP transport layer of the customer portal.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, response
// compression, request timeouts and integrity checks are handled here before
// requests are delegated to the service layer.
package http
