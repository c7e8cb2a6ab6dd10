// Package domain models zone load data: free-text zone labels read from a
// tabular dataset, administrative zone boundaries read from a GeoJSON
// collection, and the per-zone summary produced by joining the two.
//
// # Zone Names
//
// The same zone appears twice, once as a record label and once as a boundary
// name, and the two rarely agree character for character:
//
//	"UT HAGUENAU", "ut haguenau  ", "UT  HAGUENAU\n"   (record labels)
//	"Haguenau"                                         (boundary name)
//
// Both sides go through [Normalize] (trim, newline removal, space collapse,
// upper-case, NFC). Record labels then go through an [AliasTable], which maps
// dataset-specific labels onto boundary names:
//
//	"UT HAGUENAU"        → "HAGUENAU"
//	"UT STRASBOURG NORD" → "STRASBOURG-3"
//
// A label with no alias entry resolves to itself. The alias table is never
// consulted for boundary names, which are assumed canonical.
//
// # Load Share
//
// Each zone's share is its record count divided by the total record count,
// times 100, rounded to two decimals. The total includes records whose zone
// has no boundary, so shares over the rendered zones sum to less than 100
// whenever [MissingZones] is non-empty. A zero total yields a zero share.
//
// # Coordinates
//
// Geometry keeps the GeoJSON (longitude, latitude) axis order throughout this
// package. The swap to (latitude, longitude) happens only in the renderer.
package domain
