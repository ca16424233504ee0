// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (fills unset environment variables only)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// Fields that no source sets fall back to built-in defaults. The main entry
// point is [GetStructuredConfig].
package config
