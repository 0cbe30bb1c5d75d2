package v1handler

import (
	"net/http"
	"spacescope/pkg/controller"
	"spacescope/pkg/serrors"
	"strconv"
	"strings"
)

// The gateway routes always answer 200 with a tagged result; degradation is
// reported through _status and _origin rather than the HTTP status.

func (h Handler) ISS(w http.ResponseWriter, r *http.Request) {
	controller.WriteJSON(w, r, http.StatusOK, h.deps.Feeds.ISSLocation(r.Context()))
}

func (h Handler) Solar(w http.ResponseWriter, r *http.Request) {
	controller.WriteJSON(w, r, http.StatusOK, h.deps.Feeds.SolarActivity(r.Context()))
}

func (h Handler) APOD(w http.ResponseWriter, r *http.Request) {
	controller.WriteJSON(w, r, http.StatusOK, h.deps.Feeds.NasaAPOD(r.Context()))
}

func (h Handler) SpaceX(w http.ResponseWriter, r *http.Request) {
	controller.WriteJSON(w, r, http.StatusOK, h.deps.Feeds.SpaceXLatest(r.Context()))
}

func (h Handler) TechPort(w http.ResponseWriter, r *http.Request) {
	controller.WriteJSON(w, r, http.StatusOK, h.deps.Feeds.TechPortProjects(r.Context()))
}

// Weather serves current conditions at ?lat=&lon=.
func (h Handler) Weather(w http.ResponseWriter, r *http.Request) {
	lat, err := parseCoordinate(r, "lat", 90) //nolint: mnd
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	lon, err := parseCoordinate(r, "lon", 180) //nolint: mnd
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, r, http.StatusOK, h.deps.Weather.Current(r.Context(), lat, lon))
}

// Earth serves the visualizer report of ?city= in ?mode=.
func (h Handler) Earth(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "city is required"))

		return
	}

	res, err := h.deps.Earth.Report(r.Context(), city, r.URL.Query().Get("mode"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, r, http.StatusOK, res)
}

func (h Handler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	controller.WriteJSON(w, r, http.StatusOK, h.deps.Status.Status(r.Context()))
}

// RAG answers ?q= from the document corpus.
func (h Handler) RAG(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "q is required"))

		return
	}

	controller.WriteJSON(w, r, http.StatusOK, h.deps.RAG.Ask(r.Context(), q))
}

func parseCoordinate(r *http.Request, name string, limit float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "%s is required", name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < -limit || v > limit {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a number between %g and %g", name, -limit, limit)
	}

	return v, nil
}
