// Package threshold locates the first sample, bin or curve point of a signal
// that crosses a level.
//
// Each detector reduces to a single first-match query answered by package
// find, so the scan stops at the crossing instead of testing the whole
// signal:
//
//   - ImpulseStart: first sample within a ratio of the absolute peak
//   - FirstAbove: first sample whose magnitude exceeds a level (clipping)
//   - DecayCrossing: first point of a dB decay curve at or below a level
//   - FirstBinAbove: first spectral bin of a frame with at least a given power
//
// SchroederCurve produces the normalized energy decay curve DecayCrossing
// is typically applied to.
//
// # Usage
//
//	start, err := threshold.ImpulseStart(ir, 0.1)
//	curve, _ := threshold.SchroederCurve(ir[start:])
//	t20 := threshold.DecayCrossing(curve, -20)
//
// Detectors return find.NotFound when no crossing exists.
package threshold
