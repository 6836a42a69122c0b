// Package detector turns a sampled continuous waveform into the output of a
// gravitational-wave detector channel.
//
// The response is narrowband: at every output sample the waveform's
// instantaneous frequency selects a value of the complex [Transfer]
// function, whose magnitude scales and whose argument delays the phase.
// With a [Site] the plus and cross polarizations are weighted by the
// antenna pattern of an L-shaped interferometer rotating with the Earth;
// without one the detector is aligned with the wave's plus polarization.
//
// Barycentric and orbital time delays are not modeled.
package detector
