package spacefeed

import (
	"spacescope/pkg/domain"
	"strconv"
	"strings"
)

// NOAAScale is one scale of a raw noaa-scales.json period.
type NOAAScale struct {
	Scale *string `json:"Scale"`
	Text  *string `json:"Text"`
}

// NOAAPeriod is one raw noaa-scales.json period.
type NOAAPeriod struct {
	R *NOAAScale `json:"R"`
	S *NOAAScale `json:"S"`
	G *NOAAScale `json:"G"`
}

// NOAAScales is the raw noaa-scales.json document keyed by period.
type NOAAScales map[string]NOAAPeriod

// solarPeriods are the periods the dashboard shows.
var solarPeriods = []string{"0", "1", "2"} //nolint: gochecknoglobals

// TransformSolar keeps periods 0 to 2 and converts each scale to its numeric
// level and a display text. Missing periods are left out.
func TransformSolar(raw NOAAScales) domain.SolarActivity {
	out := domain.SolarActivity{}
	for _, p := range solarPeriods {
		period, ok := raw[p]
		if !ok {
			continue
		}
		out[p] = domain.SolarReading{
			R: transformScale(period.R),
			S: transformScale(period.S),
			G: transformScale(period.G),
		}
	}

	return out
}

func transformScale(s *NOAAScale) domain.SolarScale {
	if s == nil {
		return domain.SolarScale{Value: 0, Text: "N/A"}
	}

	scale := "0"
	if s.Scale != nil && *s.Scale != "" {
		scale = *s.Scale
	}
	text := "Normal"
	if s.Text != nil && *s.Text != "" {
		text = *s.Text
	}
	if strings.EqualFold(text, "none") {
		text = "Quiet"
	}

	return domain.SolarScale{Value: scaleLevel(scale), Text: text}
}

// scaleLevel drops the first scale letter and reads the leading integer,
// e.g. "G3" is 3. Anything unreadable is 0.
func scaleLevel(scale string) int {
	if i := strings.IndexAny(scale, "RSG"); i >= 0 {
		scale = scale[:i] + scale[i+1:]
	}
	scale = strings.TrimSpace(scale)

	end := 0
	if end < len(scale) && (scale[end] == '-' || scale[end] == '+') {
		end++
	}
	for end < len(scale) && scale[end] >= '0' && scale[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(scale[:end])
	if err != nil {
		return 0
	}

	return n
}
