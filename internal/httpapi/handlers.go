package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/router"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	state0, err := alloc.StateFromMap(req.State)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	floors := s.floors
	if len(req.Floors) > 0 {
		floors, err = alloc.FloorsFromMap(req.Floors)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	if req.Income <= 0 || req.Step <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "income and step must be positive"})
		return
	}

	start := time.Now()
	res := router.Solve(state0, req.Income, floors, req.Target, req.Step, s.opts)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.ObserveSolve(string(res.Method), string(res.Status), elapsed.Seconds())
	}

	writeJSON(w, http.StatusOK, toSolveResponse(res))
}

func toSolveResponse(res router.Result) solveResponse {
	trace := make([]traceEntryResponse, len(res.Trace))
	for i, e := range res.Trace {
		trace[i] = traceEntryResponse{Method: string(e.Method), Status: string(e.Status)}
	}

	resp := solveResponse{
		Method:         string(res.Method),
		Status:         string(res.Status),
		Notes:          res.Notes,
		Recommendation: res.Recommendation,
		Trace:          trace,
	}
	if res.Status != router.StatusAiRecommendation {
		resp.FinalState = res.FinalState.ToMap()
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
