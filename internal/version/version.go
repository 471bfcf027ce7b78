// Package version contains the congress version.
package version

// Version is the congress version.
const Version = "0.1.0"
