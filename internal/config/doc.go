// Package config provides configuration loading, merging, and validation
// facilities for the customer portal server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (exported into the process environment, never overriding it)
//  2. Environment variables, with defaults from `envDefault` tags
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
