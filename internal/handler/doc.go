// Package handler provides HTTP request handlers for the WorldForge API.
//
// Every entity family is served by the generic EntityHandler, which maps the
// shared CRUD surface onto a family's service. Handlers never see the
// persistence layer directly; they translate HTTP to service calls and
// service errors to RFC 9457 Problem Details.
//
// # Handler Pattern
//
//   - NewEntityHandler accepts the family's service
//   - Register mounts the family's routes on a mux under its plural prefix
//   - Response helpers from response.go standardize output format
//   - MapServiceError converts domain errors to Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: single resource
//   - WriteCollection: list of resources with a count
//   - WriteJSON: raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Example Usage
//
//	areas := handler.NewEntityHandler[model.Area](areaService)
//	areas.Register(mux, "/v1/areas")
package handler
