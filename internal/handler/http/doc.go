// Package http is the REST transport of the vault server.
//
// Routes live under /api and are served by a chi router. Every request gets
// a trace ID, an access log entry and Prometheus counters; everything except
// registration, login, the generator and the version endpoint requires a
// bearer JWT. Errors are written as models.ErrorResponse with the codes and
// messages of package app.
package http
