package v1handler

import (
	"net/http"
	"spacescope/pkg/controller"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	"strings"
	"unicode/utf8"
)

const (
	// MaxMessageLen caps free-text inputs sent to the assistant.
	MaxMessageLen = 4000
	// MaxHistoryTurns caps the chat history accepted from the client.
	MaxHistoryTurns = 50
)

type ChatRequest struct {
	Message string            `json:"message"`
	History []domain.ChatTurn `json:"history,omitempty"`
}

type StartTutorRequest struct {
	Topic string `json:"topic"`
}

type StartTutorResponse struct {
	SessionID string `json:"session_id"`
}

type TutorMessageRequest struct {
	Message string `json:"message"`
}

type MissionInsightRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MetricInsightRequest struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Context string `json:"context"`
	Trend   string `json:"trend"`
}

type SearchEventsRequest struct {
	Query string `json:"query"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type ImageResponse struct {
	URL string `json:"url"`
}

func (h Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := controller.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := checkText("message", req.Message); err != nil {
		h.writeError(w, r, err)

		return
	}
	if len(req.History) > MaxHistoryTurns {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "history is limited to %d turns", MaxHistoryTurns))

		return
	}
	for _, turn := range req.History {
		if turn.Role != domain.RoleUser && turn.Role != domain.RoleModel {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "history role must be user or model"))

			return
		}
	}

	res := h.deps.Assistant.Chat(r.Context(), req.Message, req.History)
	controller.WriteJSON(w, r, http.StatusOK, textResult(res))
}

func (h Handler) StartTutor(w http.ResponseWriter, r *http.Request) {
	var req StartTutorRequest
	if err := controller.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := checkText("topic", req.Topic); err != nil {
		h.writeError(w, r, err)

		return
	}

	id, err := h.deps.Assistant.StartTutor(r.Context(), req.Topic)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, r, http.StatusCreated, StartTutorResponse{SessionID: id})
}

func (h Handler) TutorMessage(w http.ResponseWriter, r *http.Request) {
	var req TutorMessageRequest
	if err := controller.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := checkText("message", req.Message); err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Assistant.Tutor(r.Context(), r.PathValue("id"), req.Message)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	controller.WriteJSON(w, r, http.StatusOK, res)
}

func (h Handler) StellarImage(w http.ResponseWriter, r *http.Request) {
	prompt := r.URL.Query().Get("prompt")
	if err := checkText("prompt", prompt); err != nil {
		h.writeError(w, r, err)

		return
	}

	res := h.deps.Assistant.StellarImage(r.Context(), prompt)
	controller.WriteJSON(w, r, http.StatusOK, remote.Result[ImageResponse]{
		Payload: ImageResponse{URL: res.Payload},
		Status:  res.Status,
		Origin:  res.Origin,
	})
}

func (h Handler) MissionInsight(w http.ResponseWriter, r *http.Request) {
	var req MissionInsightRequest
	if err := controller.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := checkText("name", req.Name); err != nil {
		h.writeError(w, r, err)

		return
	}

	res := h.deps.Assistant.MissionInsight(r.Context(), req.Name, req.Description)
	controller.WriteJSON(w, r, http.StatusOK, textResult(res))
}

func (h Handler) MetricInsight(w http.ResponseWriter, r *http.Request) {
	var req MetricInsightRequest
	if err := controller.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := checkText("label", req.Label); err != nil {
		h.writeError(w, r, err)

		return
	}

	res := h.deps.Assistant.MetricInsight(r.Context(), req.Label, req.Value, req.Context, req.Trend)
	controller.WriteJSON(w, r, http.StatusOK, textResult(res))
}

func (h Handler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	var req SearchEventsRequest
	if err := controller.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}
	if err := checkText("query", req.Query); err != nil {
		h.writeError(w, r, err)

		return
	}

	res := h.deps.Assistant.SearchEvents(r.Context(), req.Query)
	controller.WriteJSON(w, r, http.StatusOK, textResult(res))
}

func textResult(res remote.Result[string]) remote.Result[TextResponse] {
	return remote.Result[TextResponse]{
		Payload: TextResponse{Text: res.Payload},
		Status:  res.Status,
		Origin:  res.Origin,
	}
}

func checkText(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return serrors.With(serrors.ErrBadRequest, "%s is required", name)
	}
	if utf8.RuneCountInString(value) > MaxMessageLen {
		return serrors.With(serrors.ErrBadRequest, "%s is limited to %d characters", name, MaxMessageLen)
	}

	return nil
}
