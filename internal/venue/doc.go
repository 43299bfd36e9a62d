// Package venue implements one adapter per Boston-area venue calendar.
//
// Each adapter is an independent, stateless translator from one wire format
// (HTML markup, a JSON API, or a JavaScript literal embedded in HTML) into
// the shared event model. Adapters fetch sequentially and best-effort; see
// each adapter's documentation for its failure semantics.
package venue
