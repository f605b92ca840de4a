// Package program defines the core catalog records: the Program entry, the
// ordered id-keyed Collection that holds fetched entries, and the Page wrapper
// for paginated list payloads. The types carry no fetch or render behaviour;
// those stages live in pkg/catalog and pkg/render.
package program
