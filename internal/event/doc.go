// Package event defines the shared record type for concert listings.
//
// Each venue adapter translates its own wire format into a flat list of
// Event values. Records are built once, serialized, and never mutated;
// there is no identity or deduplication across adapters.
package event
