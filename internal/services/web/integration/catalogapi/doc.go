// Package catalogapi calls the public character catalog HTTP API.
//
// Every call is a single GET with no retries. Failures are logged and
// returned as typed web errors so callers can pick a placeholder by status.
package catalogapi
