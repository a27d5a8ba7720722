// Package kernel provides the domain primitives shared by the customer and order aggregates.
//
// The package includes:
//   - ID: the identifier codec between caller-facing hex strings and the store's ObjectID
//
// A zero-value ID is invalid; every identifier accepted from a caller goes through
// IDFromString before it reaches a repository.
package kernel
