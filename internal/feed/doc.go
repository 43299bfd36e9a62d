// Package feed aggregates all venue adapters into a single normalized feed.
//
// The aggregator owns the invocation order and nothing else: no caching,
// no retries, no deduplication across sources.
package feed
