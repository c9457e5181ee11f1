// Package synth generates synthetic conductivity images for testing
// the inversion pipeline: a homogeneous halfspace plus two anomaly
// layouts on a coarse partition of the image.
package synth
