// Package geom holds the rectilinear point/segment primitives and the
// Elmore wire/buffer delay formulas that every other package in this
// module builds on.
//
// A Technology groups the five process constants spec.md §3 calls out:
// buffer intrinsic delay, buffer input capacitance, buffer driver
// resistance, and per-unit-length wire resistance/capacitance. Given a
// Technology, WireCapacitance/WireDelay/BufferDelay compute the Elmore
// contributions spec.md §4.1 defines:
//
//	C_wire(e)        = u_c · ℓ(e)
//	D_wire(e, C_load) = ½ · u_r · u_c · ℓ(e)² + u_r · ℓ(e) · C_load
//	D_buf(C_load)     = D_intr + R_buf · C_load
package geom
