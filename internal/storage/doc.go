// Package storage persists the aggregated concert feed as a JSON file.
package storage
