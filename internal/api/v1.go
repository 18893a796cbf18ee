package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pixelbar/pixeld/internal/color"
)

// The v1 API names the groups after their physical location. The order is
// fixed by the light controller hardware.
var groupNames = [color.GroupCount]string{"beamer", "door", "stairs", "kitchen"}

// groupStateV1 holds one group's channel values on the 0-100 scale used by
// the touchscreen interface.
type groupStateV1 struct {
	Red   int `json:"red"`
	Green int `json:"green"`
	Blue  int `json:"blue"`
	White int `json:"white"`
}

func toScale100(v uint8) int {
	return int(100 * int(v) / 255)
}

func fromScale100(v int) uint8 {
	return uint8(255 * v / 100)
}

func stateToV1(gs color.GroupSet) map[string]groupStateV1 {
	resp := make(map[string]groupStateV1, color.GroupCount)
	for i, name := range groupNames {
		resp[name] = groupStateV1{
			Red:   toScale100(gs[i].R),
			Green: toScale100(gs[i].G),
			Blue:  toScale100(gs[i].B),
			White: toScale100(gs[i].W),
		}
	}
	return resp
}

func (s *Server) handleGetStateV1(w http.ResponseWriter, r *http.Request) {
	gs, ok := s.ctrl.Current()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no color set yet"})
		return
	}
	writeJSON(w, http.StatusOK, stateToV1(gs))
}

func (s *Server) handleSetStateV1(w http.ResponseWriter, r *http.Request) {
	var req map[string]map[string]int
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no or malformed data supplied"})
		return
	}

	var gs color.GroupSet
	for i, name := range groupNames {
		values, ok := req[name]
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no colors specified for group " + name})
			return
		}
		channels := [4]uint8{}
		for j, channel := range []string{"red", "green", "blue", "white"} {
			value, ok := values[channel]
			if !ok {
				writeJSON(w, http.StatusBadRequest, errorResponse{
					Error: fmt.Sprintf("no %s value specified for group %s", channel, name),
				})
				return
			}
			if value < 0 || value > 100 {
				writeJSON(w, http.StatusBadRequest, errorResponse{
					Error: fmt.Sprintf("illegal value %d specified for color %s in group %s", value, channel, name),
				})
				return
			}
			channels[j] = fromScale100(value)
		}
		gs[i] = color.Color{R: channels[0], G: channels[1], B: channels[2], W: channels[3]}
	}

	applied, err := s.ctrl.ApplyGroups(gs, "api/v1")
	if err != nil {
		writeApplyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stateToV1(applied))
}
