// Package main runs lunaserver, the HTTP front end of the moon phase engine.
//
// HTTP API
//
//	GET /
//	    HTML page for today, or for ?date=YYYY-MM-DD.
//
//	GET /api/phase?date=YYYY-MM-DD&time=HH:MM:SS
//	    Snapshot as JSON plus a "visualization" image URL. date defaults to
//	    today in the configured time zone, time to default_time.
//
//	GET /api/calendar?from=YYYY-MM-DD&days=N
//	    N consecutive daily snapshots (1 <= N <= 62, default 30).
//
//	GET /images/{filename}
//	    A static or generated image from image_dir.
//
//	GET /healthz
//	    Liveness check.
//
// Behaviour
//
//   - Bad query parameters are 400 with {"error": "..."}.
//   - Computation failures are 500; the page route renders an HTML error.
//   - JSON and image responses carry a blake2b ETag and answer a matching
//     If-None-Match with 304.
//   - Responses for an explicit date are cacheable for cache_max_age.
//   - A structured access log records method, path, status, bytes and
//     duration for each request.
//   - SIGINT or SIGTERM drains in-flight requests before exit.
//
// Configuration comes from lunaphase.yaml, LUNAPHASE_* variables and the
// flags below; see internal/app.
package main
