package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pixelbar/pixeld/internal/color"
)

// stateResponseV2 carries the current colors as hex tokens. Colors is null
// until the first successful send.
type stateResponseV2 struct {
	Colors []string `json:"colors"`
}

type setRequestV2 struct {
	Colors []string `json:"colors"`
}

func (s *Server) handleGetStateV2(w http.ResponseWriter, r *http.Request) {
	var resp stateResponseV2
	if gs, ok := s.ctrl.Current(); ok {
		resp.Colors = gs.Hex()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetStateV2(w http.ResponseWriter, r *http.Request) {
	var req setRequestV2
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no or malformed data supplied"})
		return
	}
	if req.Colors == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no colors specified"})
		return
	}

	gs, err := s.ctrl.Apply(req.Colors, "api/v2")
	if err != nil {
		writeApplyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stateResponseV2{Colors: gs.Hex()})
}

// handlePatchStateV2 updates only the groups named in the request body,
// e.g. {"0": "ff0000", "2": "8844"}. Unnamed groups keep their last color.
func (s *Server) handlePatchStateV2(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no or malformed data supplied"})
		return
	}

	overrides := make(map[int]string, len(req))
	for key, token := range req {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= color.GroupCount {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown group " + key})
			return
		}
		overrides[idx] = token
	}

	gs, err := s.ctrl.ApplyPartial(overrides, "api/v2")
	if err != nil {
		writeApplyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stateResponseV2{Colors: gs.Hex()})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "send history is disabled"})
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := s.ledger.Recent(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"sends": entries})
}
