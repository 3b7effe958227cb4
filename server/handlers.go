package server

import (
	"encoding/json"
	"net/http"

	treevol "github.com/bikuz/carbonapi-sub001"
)

// mirrors the inventory table column names
type treeRequest struct {
	DiameterP  float64 `json:"diameter_p"`
	HeightM    float64 `json:"height_m"`
	HeightP    float64 `json:"height_p"`
	CrownClass int     `json:"crown_class"`
}

func (s *Server) handleVolumeRatio(w http.ResponseWriter, r *http.Request) {
	var req treeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.DiameterP <= 0 {
		jsonError(w, "diameter_p must be positive", http.StatusBadRequest)
		return
	}

	t := treevol.NewTree(req.DiameterP, req.HeightM, req.HeightP, req.CrownClass)
	ratio, err := s.par.RecordRatio(&t, s.pol)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"volume_ratio": ratio, "d": t.D, "h": t.H})
}

type volumeRequest struct {
	DiameterP float64 `json:"diameter_p"`
	Height    float64 `json:"height"`
	Cutoff    float64 `json:"cutoff"`
}

func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	var req volumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.DiameterP <= 0 {
		jsonError(w, "diameter_p must be positive", http.StatusBadRequest)
		return
	}
	if req.Height <= 1.3 {
		jsonError(w, "height must exceed breast height (1.3m)", http.StatusBadRequest)
		return
	}
	if req.Cutoff == 0 {
		req.Cutoff = req.Height
	}
	writeJSON(w, map[string]any{"volume_m3": s.par.VolumeTo(req.DiameterP, req.Height, req.Cutoff)})
}

type taperRequest struct {
	DiameterP float64 `json:"diameter_p"`
	Height    float64 `json:"height"`
	Step      float64 `json:"step"` // m, sampling interval; defaults to 0.1
}

func (s *Server) handleTaper(w http.ResponseWriter, r *http.Request) {
	var req taperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.DiameterP <= 0 {
		jsonError(w, "diameter_p must be positive", http.StatusBadRequest)
		return
	}
	if req.Height <= 1.3 {
		jsonError(w, "height must exceed breast height (1.3m)", http.StatusBadRequest)
		return
	}
	if req.Step <= 0 {
		req.Step = .1
	}

	var hl, dl []float64
	for h := .15; h < req.Height; h += req.Step {
		hl = append(hl, h)
		dl = append(dl, s.par.DiameterAt(req.DiameterP, 1.-h/req.Height, req.Height))
	}
	writeJSON(w, map[string]any{"heights": hl, "diameters": dl})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
