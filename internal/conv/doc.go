// Package conv provides checked integer conversions.
//
// Batch code moves values between Go's platform int, the fixed-width types of
// Arrow columns and the 32-bit row addressing of absent-row masks. These
// helpers refuse lossy conversions instead of silently wrapping.
//
// For conversions that are provably safe by domain constraints (resolutions,
// vertex numbers, loop indices), use direct type casts instead.
package conv
