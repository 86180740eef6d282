// Package middleware holds the inbound HTTP pipeline of the dashboard API.
// Pipeline assembles the stages in this order:
//
//	Recovery, RequestID, CorrelationID, AppContext, OpenTelemetry,
//	Logging, Authenticate, Timeout, then the route handler.
//
// Every stage is a func(http.Handler) http.Handler, so each can also be
// mounted on its own in tests.
package middleware
