// Package store defines the persistence interfaces consumed by the service
// and generation layers, together with the sentinel errors implementations
// return. Concrete implementations live in platform/postgres.
package store
