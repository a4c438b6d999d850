// Package api contains the client-side building blocks for talking to the
// ContactKeeper backend.
//
// # Overview
//
// The package provides:
//  1. An authenticated request pipeline (see Pipeline): an explicit
//     decorator composed around the HTTP transport that attaches the bearer
//     credential, recovers from exactly one authorization expiry per
//     logical request by refreshing the credential and resending, and
//     escalates to a session-expired signal when recovery fails.
//  2. A typed REST client (see Client) with the auth operations
//     (Login/Register/Me/Logout, password reset and change) and the Contact
//     CRUD operations (list/get/create/update/delete/search).
//  3. Error normalization: structured backend failures surface the
//     backend's "detail" message verbatim as *APIError.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrForbidden,
// ErrNotFound, ErrSessionExpired. Transport failures propagate unchanged.
//
// # Concurrency & Contexts
//
// Client and Pipeline are safe for concurrent use; the token store is the
// only shared mutable state and serializes its own access. All operations
// accept context.Context and honor cancellation/timeouts.
package api
