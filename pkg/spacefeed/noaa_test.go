package spacefeed_test

import (
	"spacescope/pkg/domain"
	"spacescope/pkg/spacefeed"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestTransformSolar_scales(t *testing.T) {
	tests := []struct {
		name     string
		scale    *spacefeed.NOAAScale
		expected domain.SolarScale
	}{
		{name: "missing scale", scale: nil, expected: domain.SolarScale{Value: 0, Text: "N/A"}},
		{name: "plain level", scale: &spacefeed.NOAAScale{Scale: ptr("2"), Text: ptr("moderate")},
			expected: domain.SolarScale{Value: 2, Text: "moderate"}},
		{name: "letter prefix", scale: &spacefeed.NOAAScale{Scale: ptr("G4"), Text: ptr("severe")},
			expected: domain.SolarScale{Value: 4, Text: "severe"}},
		{name: "none is quiet", scale: &spacefeed.NOAAScale{Scale: ptr("0"), Text: ptr("None")},
			expected: domain.SolarScale{Value: 0, Text: "Quiet"}},
		{name: "empty fields", scale: &spacefeed.NOAAScale{Scale: ptr(""), Text: ptr("")},
			expected: domain.SolarScale{Value: 0, Text: "Normal"}},
		{name: "garbage level", scale: &spacefeed.NOAAScale{Scale: ptr("high")},
			expected: domain.SolarScale{Value: 0, Text: "Normal"}},
		{name: "trailing text", scale: &spacefeed.NOAAScale{Scale: ptr("R1 (minor)")},
			expected: domain.SolarScale{Value: 1, Text: "Normal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := spacefeed.TransformSolar(spacefeed.NOAAScales{"0": {R: tt.scale}})
			require.Equal(t, tt.expected, out["0"].R)
		})
	}
}

func TestTransformSolar_periods(t *testing.T) {
	out := spacefeed.TransformSolar(spacefeed.NOAAScales{
		"-1": {},
		"2":  {},
		"7":  {},
	})
	require.Len(t, out, 1)
	require.Contains(t, out, "2")

	require.Empty(t, spacefeed.TransformSolar(nil))
}
