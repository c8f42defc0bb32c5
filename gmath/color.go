package gmath

import (
	"fmt"
	"math"
)

// sRGB piecewise transfer function thresholds.
const (
	linearThreshold = 0.0031308
	gammaThreshold  = 0.04045
)

// GammaToLinearChannel converts a single sRGB channel in [0, 1] to linear.
func GammaToLinearChannel(c float64) float64 {
	if c <= gammaThreshold {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToGammaChannel converts a single linear channel in [0, 1] to sRGB.
func LinearToGammaChannel(c float64) float64 {
	if c <= linearThreshold {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// GammaToLinear converts an sRGB color to linear RGB.
func GammaToLinear(r, g, b float64) (float64, float64, float64) {
	return GammaToLinearChannel(r), GammaToLinearChannel(g), GammaToLinearChannel(b)
}

// LinearToGamma converts a linear RGB color to sRGB.
func LinearToGamma(r, g, b float64) (float64, float64, float64) {
	return LinearToGammaChannel(r), LinearToGammaChannel(g), LinearToGammaChannel(b)
}

// GammaToLinearColor converts an sRGB 3-tuple to linear RGB.
func GammaToLinearColor(c [3]float64) [3]float64 {
	return [3]float64{GammaToLinearChannel(c[0]), GammaToLinearChannel(c[1]), GammaToLinearChannel(c[2])}
}

// LinearToGammaColor converts a linear RGB 3-tuple to sRGB.
func LinearToGammaColor(c [3]float64) [3]float64 {
	return [3]float64{LinearToGammaChannel(c[0]), LinearToGammaChannel(c[1]), LinearToGammaChannel(c[2])}
}

func channelToByte(c float64) uint8 {
	b := math.Round(c * 255)
	if b < 0 {
		return 0
	}
	if b > 255 {
		return 255
	}
	return uint8(b)
}

// ColorToBytes converts 3 or 4 channels in [0, 1] to 8-bit values in
// [0, 255]. Alpha is optional and keeps its position when present. Any
// other channel count fails with ErrInvalidArgument.
func ColorToBytes(channels ...float64) ([]uint8, error) {
	if len(channels) < 3 || len(channels) > 4 {
		return nil, fmt.Errorf("color takes 3 or 4 channels, got %d: %w", len(channels), ErrInvalidArgument)
	}
	bytes := make([]uint8, len(channels))
	for i, c := range channels {
		bytes[i] = channelToByte(c)
	}
	return bytes, nil
}

// ColorFromBytes converts 3 or 4 8-bit channel values back to floats in
// [0, 1].
func ColorFromBytes(bytes ...uint8) ([]float64, error) {
	if len(bytes) < 3 || len(bytes) > 4 {
		return nil, fmt.Errorf("color takes 3 or 4 channels, got %d: %w", len(bytes), ErrInvalidArgument)
	}
	channels := make([]float64, len(bytes))
	for i, b := range bytes {
		channels[i] = float64(b) / 255
	}
	return channels, nil
}
