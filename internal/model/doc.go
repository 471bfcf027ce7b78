// Package model contains the shared interfaces and data structures.
//
// # Criteria for adding a type to this package
//
// This package should contain two kinds of types:
//
// 1. interfaces that are shared by several packages within the
// codebase (e.g., the logger and the HTTP client), with the objective
// of separating unrelated pieces of code and making testing easier;
//
// 2. small pieces of data shared across packages (e.g., the
// chamber and the response format of the Congress API).
//
// In general, this package should not contain logic, unless this
// logic is strictly related to the data structures themselves.
//
// # Content of this package
//
// - congress.go: identifiers accepted by the Congress API endpoints;
//
// - http.go: the HTTP client interface and common HTTP constants;
//
// - logger.go: generic definition of an apex/log compatible logger.
package model
