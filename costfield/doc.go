// Package costfield builds the router's cost field: a sparse per-cell
// penalty map accumulated from "environment" objects, and a
// blocked-cell set accumulated from "barrier" objects, with the route's
// own start and end cells always forced open.
//
// Build walks its inputs once: no reference to them is kept past
// construction, and all the summation work happens once up front
// rather than lazily, since every router step will query the result.
package costfield
