package iir

import "errors"

var (
	// ErrInvalidOrder is returned for an order below 1 or above the family limit.
	ErrInvalidOrder = errors.New("iir: invalid filter order")

	// ErrInvalidBand is returned unless 0 < low < high < 1 (Nyquist units).
	ErrInvalidBand = errors.New("iir: invalid band")

	// ErrUnsupportedFamily is returned for an unknown design family.
	ErrUnsupportedFamily = errors.New("iir: unsupported filter family")

	// ErrRootFinding is returned when prototype poles cannot be computed.
	ErrRootFinding = errors.New("iir: prototype root finding failed")
)
