// Package runtime contains the structs and definitions consumed by
// deploycheck at runtime.
package runtime
