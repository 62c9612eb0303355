// Package queries contains the read side of the front-of-house use cases.
// Query handlers assemble view models from the store ports and never
// mutate state; all derived display fields (progress, colors, action
// labels) come from the domain model so every consumer renders the same
// values.
package queries
