package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adalundhe/restyle/core/presets"
	"github.com/adalundhe/restyle/core/style"
)

type editPropertyRequest struct {
	Property string  `json:"property"`
	Value    string  `json:"value"`
	Current  float64 `json:"current"`
}

type editMultiplePropertiesRequest struct {
	Instruction string         `json:"instruction"`
	Snapshot    style.Snapshot `json:"snapshot"`
}

type applyPresetRequest struct {
	Preset string `json:"preset"`
}

type suggestImprovementsRequest struct {
	Snapshot style.Snapshot `json:"snapshot"`
	Role     string         `json:"role"`
}

type presetListResponse struct {
	Presets []presets.Preset `json:"presets"`
}

func (h *handler) editProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req editPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Property == "" || req.Value == "" {
		http.Error(w, "property and value are required", http.StatusBadRequest)
		return
	}

	result := h.toolkit.EditProperty(id, req.Property, req.Value, req.Current)
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) editMultipleProperties(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req editMultiplePropertiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Instruction == "" {
		http.Error(w, "instruction is required", http.StatusBadRequest)
		return
	}

	result := h.toolkit.EditMultipleProperties(id, req.Instruction, req.Snapshot)
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) applyPreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req applyPresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Preset == "" {
		http.Error(w, "preset is required", http.StatusBadRequest)
		return
	}

	result := h.toolkit.ApplyStylePreset(id, req.Preset)
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) suggestImprovements(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req suggestImprovementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.toolkit.SuggestImprovements(id, req.Snapshot, style.ParseRole(req.Role))
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) listPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presetListResponse{Presets: h.toolkit.Resolver().All()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
