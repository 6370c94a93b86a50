// Package geo loads region boundaries and joins them with the aggregated
// ballot counts, deriving the ratio shown on the map.
package geo
