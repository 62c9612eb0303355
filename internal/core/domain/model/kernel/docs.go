// Package kernel contains shared value objects used across the domain
// model. These are small immutable types with validated constructors that
// aggregates build on.
package kernel
