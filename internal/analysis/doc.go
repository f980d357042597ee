// Package analysis examines excitation and response tracks in the
// frequency domain.
//
//   - [FourierAmplitude]: one-sided amplitude spectrum of a track
//   - [DominantFrequency], [DominantPeriod]: strongest spectral line
//   - [FrequencyResponse]: gain of a discrete displacement filter
package analysis
