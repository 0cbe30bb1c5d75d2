// Package upstream provides a spacefeed.Client implementation backed by the
// public open-notify, NOAA SWPC, NASA and SpaceX APIs.
package upstream

import (
	"context"
	"net/url"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
	"spacescope/pkg/spacefeed"
	"time"
)

// Endpoints are the upstream URLs of every feed.
type Endpoints struct {
	ISS      string
	Solar    string
	APOD     string
	SpaceX   string
	TechPort string
}

// DefaultEndpoints returns the public production endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		ISS:      "http://api.open-notify.org/iss-now.json",
		Solar:    "https://services.swpc.noaa.gov/products/noaa-scales.json",
		APOD:     "https://api.nasa.gov/planetary/apod",
		SpaceX:   "https://api.spacexdata.com/v5/launches/latest",
		TechPort: "https://techport.nasa.gov/api/projects",
	}
}

// Client reads the feeds through a remote.Fetcher. It is safe for concurrent use.
type Client struct {
	fetcher   *remote.Fetcher  // fetcher bounds and instruments every read
	endpoints Endpoints        // endpoints are the upstream URLs
	nasaKey   string           // nasaKey is the api.nasa.gov key
	now       func() time.Time // now stamps the ISS fallback
}

// ISSLocation reads the current station position.
func (c *Client) ISSLocation(ctx context.Context) remote.Result[domain.ISSPosition] {
	return remote.Fetch(ctx, c.fetcher, c.endpoints.ISS, spacefeed.FallbackISS(c.now()))
}

// SolarActivity reads noaa-scales.json and reduces it to the displayed scales.
func (c *Client) SolarActivity(ctx context.Context) remote.Result[domain.SolarActivity] {
	raw := remote.Fetch(ctx, c.fetcher, c.endpoints.Solar, spacefeed.NOAAScales{})

	return remote.Map(raw, spacefeed.TransformSolar, spacefeed.FallbackSolar())
}

// NasaAPOD reads the astronomy picture of the day.
func (c *Client) NasaAPOD(ctx context.Context) remote.Result[domain.APOD] {
	u := withQuery(c.endpoints.APOD, url.Values{"api_key": {c.nasaKey}})

	return remote.Fetch(ctx, c.fetcher, u, spacefeed.FallbackAPOD())
}

// SpaceXLatest reads the most recent launch.
func (c *Client) SpaceXLatest(ctx context.Context) remote.Result[domain.SpaceXLaunch] {
	return remote.Fetch(ctx, c.fetcher, c.endpoints.SpaceX, spacefeed.FallbackSpaceX())
}

// TechPortProjects reads the NASA TechPort project listing.
func (c *Client) TechPortProjects(ctx context.Context) remote.Result[domain.TechPortProjects] {
	res := remote.Fetch(ctx, c.fetcher, c.endpoints.TechPort, spacefeed.FallbackTechPort())
	if res.Payload.Projects == nil {
		res.Payload = spacefeed.FallbackTechPort()
	}

	return res
}

// withQuery merges params into the query of base. An unparsable base is
// returned as is so the fetch degrades on it.
func withQuery(base string, params url.Values) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}

	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				q.Set(k, v)
			}
		}
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// Ensure Client conforms to the spacefeed.Client interface at compile time.
var _ spacefeed.Client = (*Client)(nil)

// New constructs a Client reading the given endpoints. Empty endpoints fall
// back to DefaultEndpoints.
func New(fetcher *remote.Fetcher, endpoints Endpoints, nasaKey string) *Client {
	def := DefaultEndpoints()
	for _, e := range []struct {
		dst *string
		def string
	}{
		{&endpoints.ISS, def.ISS},
		{&endpoints.Solar, def.Solar},
		{&endpoints.APOD, def.APOD},
		{&endpoints.SpaceX, def.SpaceX},
		{&endpoints.TechPort, def.TechPort},
	} {
		if *e.dst == "" {
			*e.dst = e.def
		}
	}

	return &Client{
		fetcher:   fetcher,
		endpoints: endpoints,
		nasaKey:   nasaKey,
		now:       time.Now,
	}
}
