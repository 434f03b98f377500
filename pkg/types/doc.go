// Package types defines the Config, the Executor and Catalog interfaces,
// result row types, and standard errors shared across the queryboard query
// server.
package types
