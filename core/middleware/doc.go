// Package middleware contains HTTP middleware for the Fiber application that
// serves the emitted catalog.
//
// # Components
//
//   - Auth: Optional API key validation for private catalog deployments.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
package middleware
