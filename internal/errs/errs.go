// Package errs defines the error types returned to API clients.
//
// Every failure a client can act on is an *HTTPError carrying a machine
// code, a message, the HTTP status and optional field-level errors, so
// responses share one consistent JSON shape.
package errs
