// Package server exposes the phase engine over HTTP.
//
// Routes:
//
//	GET /                         HTML page for today or ?date=YYYY-MM-DD
//	GET /api/phase                JSON snapshot (?date=, ?time=HH:MM:SS)
//	GET /api/calendar             JSON snapshots (?from=, ?days=1..62)
//	GET /images/{filename}        image bytes from the image directory
//	GET /healthz                  liveness
//
// Bad input is answered with 400 and {"error": "..."}. Computation
// failures are 500: an HTML error page for / and JSON under /api. Every
// response carries the configured security headers; JSON and image bodies
// carry a blake2b ETag and honor If-None-Match.
package server
