// Package dto contains the request, query, and response shapes of the REST API.
//
// Create requests declare their rules in `binding` tags and are bound with
// BindJSON. Update shapes are never written by hand: each one is derived
// from its create request with DeriveUpdate, which makes every field
// optional, drops omitted fields, and merges update-only extras.
//
// Responses are built with New<Resource>Response. Internal numeric ids and
// credential hashes have no field in any response type.
package dto
