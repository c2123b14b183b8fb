// Package zero provides utilities for working with zero values of generic types.
package zero

// Value returns the zero value for type T. Query operators return it
// alongside an error.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
