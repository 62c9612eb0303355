// Package notification provides the transient alert entities of the
// tableside system: waiter notifications raised when an order becomes
// ready, and table calls raised by customers requesting assistance.
//
// Both entities carry a stable generated identifier so acknowledgement is a
// removal by ID; positional indices are never used.
package notification
