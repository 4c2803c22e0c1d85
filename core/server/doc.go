// Package server serves the emitted catalog over HTTP.
//
// The web frontend only consumes the JSON artifacts, so the server is a thin
// static file host with request ids, optional API key protection and CORS.
// It exposes no query API.
//
// # Routes
//
//   - GET /health : liveness check, never protected.
//   - GET /<artifact>.json : the emitted catalog files (items.json, ships.json, ...).
//
// Only the file names passed to New are served. Run logs written next to the
// artifacts answer 404.
package server
