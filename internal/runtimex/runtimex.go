// Package runtimex contains runtime extensions for dealing with
// conditions that should never happen at run time.
package runtimex

// Assert calls panic with the given message if assertion is false.
func Assert(assertion bool, message string) {
	if !assertion {
		panic(message)
	}
}
