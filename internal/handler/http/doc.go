// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, self-monitoring handlers, and the request
// pipeline middleware: request identity, telemetry capture, bearer-token
// authentication in mandatory, role-gated and optional modes, and the
// boundary that normalises every failure into the single user-facing error
// shape before it leaves the process.
package http
