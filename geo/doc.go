// Planar geometry for an interactive map editor.
//
// This package answers the questions an editor asks while the user drags and
// draws: which edge is under the cursor, does this way cross itself or another
// ring, is this polygon inside that one, how long is this path, and should the
// view scroll because the pointer is near its edge.
//
// All functions are pure. They never retain or modify their arguments and are
// safe to call from several goroutines at once. Geometry is computed in a
// projected working space; functions that need to move between model and
// working coordinates take a Projection explicitly. Comparisons use plain
// floating point with fixed tolerances, not exact predicates.
package geo
