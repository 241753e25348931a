// Package http implements the HTTP transport layer of the console API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, and
// access logging are handled in this package before requests are delegated to
// the service layer. Outbound sync notifications are not issued here; they
// belong to the service layer, which sends them only after a local mutation
// has succeeded.
package http
