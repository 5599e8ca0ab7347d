// Package api implements the HTTP handlers of the course-generation API.
// Handlers decode and validate requests, delegate to the service and
// generation layers, and map errors to sanitized HTTP responses.
package api
