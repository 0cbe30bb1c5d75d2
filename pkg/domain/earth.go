package domain

import "strings"

// VisualizerMode selects which dataset the earth visualizer reports on.
type VisualizerMode string

const (
	ModePollution   VisualizerMode = "POLLUTION"
	ModeAgriculture VisualizerMode = "AGRICULTURE"
	ModeDisaster    VisualizerMode = "DISASTER"
	ModeClimate     VisualizerMode = "CLIMATE"
)

// ParseVisualizerMode accepts a mode name in any case.
func ParseVisualizerMode(s string) (VisualizerMode, bool) {
	m := VisualizerMode(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case ModePollution, ModeAgriculture, ModeDisaster, ModeClimate:
		return m, true
	default:
		return "", false
	}
}

// Metric is one displayed value of a location report. Value is preformatted.
type Metric struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
	Label string `json:"label"`
}

// ImagePair is the before/after comparison slider of a report.
type ImagePair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// LocationReport is what the earth visualizer shows for a city and mode.
type LocationReport struct {
	LocationName string            `json:"locationName"`
	Mode         VisualizerMode    `json:"mode"`
	Metrics      map[string]Metric `json:"metrics"`
	Images       ImagePair         `json:"images"`
}

// Weather is the condensed current conditions shown in the weather panel.
type Weather struct {
	TempC     float64 `json:"temp_c"`
	Condition struct {
		Text string `json:"text"`
	} `json:"condition"`
	WindKph    float64 `json:"wind_kph"`
	Humidity   float64 `json:"humidity"`
	UV         float64 `json:"uv"`
	AirQuality struct {
		PM25 float64 `json:"pm2_5"`
		PM10 float64 `json:"pm10"`
	} `json:"air_quality"`
}
