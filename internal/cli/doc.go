// Package cli implements the command-line interface for boston-concerts.
//
// The cli package provides the Cobra-based CLI that runs every venue adapter
// in sequence and writes the combined feed to a JSON file. It coordinates the
// feed, venue, and storage packages.
package cli
