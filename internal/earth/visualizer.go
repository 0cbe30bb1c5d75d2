// Package earth builds the earth visualizer reports from open-meteo data.
package earth

import (
	"context"
	"fmt"
	"spacescope/pkg/domain"
	"spacescope/pkg/openmeteo"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// climateBaselineYears is how far back the climate mode compares against.
const climateBaselineYears = 30

// images are the before/after pairs shown per mode.
var images = map[domain.VisualizerMode]domain.ImagePair{ //nolint: gochecknoglobals
	domain.ModePollution: {
		Left:  "https://images.unsplash.com/photo-1534081333815-ae5019106622?q=80&w=1200",
		Right: "https://images.unsplash.com/photo-1621451537084-482c73073a0f?q=80&w=1200",
	},
	domain.ModeAgriculture: {
		Left:  "https://images.unsplash.com/photo-1500382017468-9049fed747ef?q=80&w=1200",
		Right: "https://images.unsplash.com/photo-1532601224476-15c79f2f7a51?q=80&w=1200",
	},
	domain.ModeDisaster: {
		Left:  "https://images.unsplash.com/photo-1602989981846-993d07e68223?q=80&w=1200",
		Right: "https://images.unsplash.com/photo-1550989460-0adf9ea622e2?q=80&w=1200",
	},
	domain.ModeClimate: {
		Left:  "https://images.unsplash.com/photo-1448375240586-dfd8f3793371?q=80&w=1200",
		Right: "https://images.unsplash.com/photo-1617112028741-69234b6e5109?q=80&w=1200",
	},
}

// visualizer is the concrete implementation of the Visualizer interface.
type visualizer struct {
	client *openmeteo.Client
	now    func() time.Time
}

// Report geocodes city and computes the metrics of mode. The report carries
// the worst status of the reads it was built from; a degraded read
// contributes its zero fallback. An unknown mode is a bad request and a
// city the geocoder does not know is not found.
func (v visualizer) Report(ctx context.Context, city string, mode string) (remote.Result[domain.LocationReport], error) {
	m, ok := domain.ParseVisualizerMode(mode)
	if !ok {
		return remote.Result[domain.LocationReport]{}, serrors.With(serrors.ErrBadRequest, "unknown mode %q", mode)
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return remote.Result[domain.LocationReport]{}, serrors.With(serrors.ErrBadRequest, "city is required")
	}

	geo := v.client.Geocode(ctx, city)
	if geo.Status.Degraded() {
		return wrap(domain.LocationReport{
			LocationName: city,
			Mode:         m,
			Metrics:      fallbackMetrics(m),
			Images:       images[m],
		}, geo.Status), nil
	}
	if len(geo.Payload.Results) == 0 {
		return remote.Result[domain.LocationReport]{}, serrors.With(serrors.ErrNotFound, "city %q not found", city)
	}
	place := geo.Payload.Results[0]

	var (
		metrics map[string]domain.Metric
		status  remote.Status
	)
	switch m {
	case domain.ModePollution:
		metrics, status = v.pollution(ctx, place)
	case domain.ModeAgriculture:
		metrics, status = v.agriculture(ctx, place)
	case domain.ModeDisaster:
		metrics, status = v.disaster(ctx, place)
	case domain.ModeClimate:
		metrics, status = v.climate(ctx, place)
	}

	return wrap(domain.LocationReport{
		LocationName: fmt.Sprintf("%s, %s", place.Name, place.Country),
		Mode:         m,
		Metrics:      metrics,
		Images:       images[m],
	}, status), nil
}

func (v visualizer) pollution(ctx context.Context, p openmeteo.Place) (map[string]domain.Metric, remote.Status) {
	aq := v.client.AirQuality(ctx, p.Latitude, p.Longitude)
	cur := aq.Payload.Current

	return map[string]domain.Metric{
		"val1": {Value: fixed(value(cur.NitrogenDioxide), 1), Unit: "μg/m³", Label: "NO2 Density"},
		"val2": {Value: fixed(value(cur.Methane), 1), Unit: "μg/m³", Label: "Methane"},
		"val3": {Value: plain(value(cur.USAQI)), Unit: "AQI", Label: "Air Quality"},
	}, aq.Status
}

func (v visualizer) agriculture(ctx context.Context, p openmeteo.Place) (map[string]domain.Metric, remote.Status) {
	fc := v.client.Forecast(ctx, p.Latitude, p.Longitude, openmeteo.ForecastQuery{
		Current: []string{"soil_moisture_0_to_1cm", "rain"},
	})
	moisture := value(fc.Payload.Current.SoilMoisture0To1cm)

	return map[string]domain.Metric{
		"val1": {Value: fixed(moisture*100, 0), Unit: "%", Label: "Soil Moisture"},
		"val2": {Value: fixed(moisture*1.5, 2), Unit: "NDVI", Label: "Biomass Index"},
		"val3": {Value: plain(value(fc.Payload.Current.Rain)), Unit: "mm", Label: "Precipitation"},
	}, fc.Status
}

func (v visualizer) disaster(ctx context.Context, p openmeteo.Place) (map[string]domain.Metric, remote.Status) {
	var (
		flood remote.Result[openmeteo.Flood]
		wind  remote.Result[openmeteo.Forecast]
	)

	var g errgroup.Group
	g.Go(func() error {
		flood = v.client.Flood(ctx, p.Latitude, p.Longitude, v.now().UTC())

		return nil
	})
	g.Go(func() error {
		wind = v.client.Forecast(ctx, p.Latitude, p.Longitude, openmeteo.ForecastQuery{
			Current: []string{"wind_gusts_10m"},
		})

		return nil
	})
	_ = g.Wait()

	status := remote.Worst(flood.Status, wind.Status)
	sensor := "Live"
	if status.Degraded() {
		sensor = "Offline"
	}

	return map[string]domain.Metric{
		"val1": {Value: plain(value(wind.Payload.Current.WindGusts10m)), Unit: "km/h", Label: "Wind Gusts"},
		"val2": {Value: fixed(first(flood.Payload.Daily.RiverDischargeMean), 1), Unit: "m³/s", Label: "River Discharge"},
		"val3": {Value: sensor, Unit: "Ping", Label: "Sensor Status"},
	}, status
}

func (v visualizer) climate(ctx context.Context, p openmeteo.Place) (map[string]domain.Metric, remote.Status) {
	var (
		hist remote.Result[openmeteo.Archive]
		curr remote.Result[openmeteo.Forecast]
	)

	now := v.now().UTC()
	var g errgroup.Group
	g.Go(func() error {
		hist = v.client.Archive(ctx, p.Latitude, p.Longitude, now.AddDate(-climateBaselineYears, 0, 0))

		return nil
	})
	g.Go(func() error {
		curr = v.client.Forecast(ctx, p.Latitude, p.Longitude, openmeteo.ForecastQuery{
			Daily:    []string{"temperature_2m_max"},
			Timezone: "auto",
		})

		return nil
	})
	_ = g.Wait()

	oldTemp := first(hist.Payload.Daily.Temperature2mMax)
	newTemp := first(curr.Payload.Daily.Temperature2mMax)
	delta := fixed(newTemp-oldTemp, 1)
	rounded, _ := strconv.ParseFloat(delta, 64)

	shown := delta
	if rounded > 0 {
		shown = "+" + delta
	}
	ice := "Stable"
	if rounded > 1 {
		ice = "-2.4%"
	}

	return map[string]domain.Metric{
		"val1": {Value: shown, Unit: "°C", Label: "30-Year Delta"},
		"val2": {Value: ice, Unit: "Vol", Label: "Ice Mass Proxy"},
		"val3": {Value: "Stable", Unit: "Sat", Label: "Forest Cover"},
	}, remote.Worst(hist.Status, curr.Status)
}

// fallbackMetrics keeps the labels of mode with every value unknown.
func fallbackMetrics(m domain.VisualizerMode) map[string]domain.Metric {
	labels := map[domain.VisualizerMode][3][2]string{
		domain.ModePollution:   {{"μg/m³", "NO2 Density"}, {"μg/m³", "Methane"}, {"AQI", "Air Quality"}},
		domain.ModeAgriculture: {{"%", "Soil Moisture"}, {"NDVI", "Biomass Index"}, {"mm", "Precipitation"}},
		domain.ModeDisaster:    {{"km/h", "Wind Gusts"}, {"m³/s", "River Discharge"}, {"Ping", "Sensor Status"}},
		domain.ModeClimate:     {{"°C", "30-Year Delta"}, {"Vol", "Ice Mass Proxy"}, {"Sat", "Forest Cover"}},
	}[m]

	out := make(map[string]domain.Metric, len(labels))
	for i, l := range labels {
		out["val"+strconv.Itoa(i+1)] = domain.Metric{Value: "N/A", Unit: l[0], Label: l[1]}
	}

	return out
}

func wrap(r domain.LocationReport, status remote.Status) remote.Result[domain.LocationReport] {
	if status.Degraded() {
		return remote.Degrade(r, status)
	}

	return remote.Live(r)
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}

func first(vs []*float64) float64 {
	if len(vs) == 0 {
		return 0
	}

	return value(vs[0])
}

func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// New creates a Visualizer reading from the given open-meteo client.
func New(client *openmeteo.Client) Visualizer {
	return &visualizer{
		client: client,
		now:    time.Now,
	}
}
