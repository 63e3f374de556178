// Package handler is the HTTP layer after the router.
//
// Handlers bind and validate the request, call a service and write the
// response. The typed pipeline in base.go does the binding, logging and
// tracing for every endpoint.
package handler
