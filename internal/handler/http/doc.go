// Package http implements the status surface of the admin gateway.
//
// It serves the build version, a health probe covering the event log
// database and the engine state, and the Prometheus metrics of the admin
// service. Request tracing and access logging are handled by middleware in
// this package before requests reach a handler.
package http
