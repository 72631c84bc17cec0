// Package client provides an HTTP implementation of the domain.PhaseClient
// interface that talks to a lunaserver.
//
// Supported operations include:
//   - Fetching the snapshot and image URL for a date, optionally at a time.
//   - Fetching a run of daily snapshots for a calendar.
//   - Checking server health.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *StatusError carrying the
// method, full URL, status text and the server's error message if any.
package client
