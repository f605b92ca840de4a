// Package catalog exposes the public contracts for fetching the remote
// program list: the Source and Document wrappers, the Loader and Parser
// stages, and the Model that owns the fetched state and notifies observers
// when a fresh result set has been installed. Implementations of the loader
// and parser live under internal/catalog to keep transport and kin-openapi
// details hidden from consumers.
package catalog
