package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/acns/backend/internal/ai"
)

func handleChat(assistant *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message   string `json:"message"`
			SessionID string `json:"sessionId"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := assistant.Chat(r.Context(), req.SessionID, req.Message, isAdmin(r))
		if err != nil {
			aiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleSearch(assistant *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := assistant.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			aiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleQuickActions(assistant *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actions, err := assistant.QuickActions(r.Context(), r.URL.Query().Get("page"), isAdmin(r))
		if err != nil {
			aiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"actions": actions})
	}
}

func handleSummarize(assistant *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ContentType string `json:"contentType"`
			ID          string `json:"id"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if uuid.Validate(req.ID) != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "id must be a valid UUID")
			return
		}

		result, err := assistant.Summarize(r.Context(), req.ContentType, req.ID)
		if err != nil {
			aiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleGenerate(assistant *ai.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ContentType string `json:"contentType"`
			Prompt      string `json:"prompt"`
			Tone        string `json:"tone"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := assistant.GenerateContent(r.Context(), req.ContentType, req.Prompt, req.Tone)
		if err != nil {
			aiError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
