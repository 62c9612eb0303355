// Package menu provides the menu item entity for the tableside system.
// Menu items are seeded at startup; availability (inStock) is the only
// mutable attribute, flipped by the admin toggle or by the kitchen marking
// an order out of stock.
package menu
