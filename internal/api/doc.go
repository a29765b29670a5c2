// Package api defines transport-friendly DTOs and thin services over the
// review store. DTOs use camelCase JSON tags and RFC3339 timestamps so
// embedding applications can serialize them without coupling to internal
// types. QueueService covers read paths; ReviewService drives the claim,
// enroll, and complete transitions.
package api
