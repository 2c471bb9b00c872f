// Package models contains persistence models that map domain types to their
// stored representation. Domain types stay free of ORM tags and JSON schema
// concerns.
//
// Structure:
// - base.go: common GORM columns
// - catalog.go: read model of the externally owned products table
// - cart.go: the versioned JSON snapshot of a cart stored in the cache
package models
