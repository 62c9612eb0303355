// Package memory implements every storage port over in-process state.
// There is no persistence: the process starts from the demo seed and all
// mutations live for the lifetime of the process only. A single Store
// backs all ports so cross-collection use cases see one consistent world
// under one lock.
package memory
