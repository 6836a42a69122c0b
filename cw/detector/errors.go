package detector

import "errors"

var (
	// ErrInvalidTransfer is returned for an unusable transfer function table.
	ErrInvalidTransfer = errors.New("detector: invalid transfer function")

	// ErrUnknownSite is returned by LookupSite for an unrecognized name.
	ErrUnknownSite = errors.New("detector: unknown site")

	// ErrInvalidWaveform is returned when a waveform has fewer than two samples
	// or a non-positive sampling interval.
	ErrInvalidWaveform = errors.New("detector: invalid waveform")
)
