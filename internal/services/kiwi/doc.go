// Package kiwi wraps the Kiwi Tequila flight-search HTTP API: building
// search queries, issuing the outbound request, and rendering the response
// into readable flight summaries.
package kiwi
