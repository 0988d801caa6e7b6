package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/seek-sim/sim"
	"github.com/inference-sim/seek-sim/sim/report"
	"github.com/inference-sim/seek-sim/sim/workload"
)

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), healthResponse{
		Status:    "healthy",
		Version:   s.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

type algorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
	Directions []string `json:"directions"`
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), algorithmsResponse{
		Algorithms: sim.SchedulerNames(),
		Directions: []string{string(sim.DirectionLeft), string(sim.DirectionRight)},
	})
}

// handleSchedule runs a JSON scenario and returns the comparison report.
// Unknown JSON fields are rejected, mirroring the strict YAML loader.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var sc workload.Scenario
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    ErrCodeBadRequest,
			Message: "invalid scenario body: " + err.Error(),
		})
		return
	}
	sc.ApplyDefaults()
	if err := sc.Validate(); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    ErrCodeValidation,
			Message: err.Error(),
		})
		return
	}

	geo := sc.Geometry()
	rep := report.New(report.Input{
		Requests:  sc.Requests,
		Head:      sc.Head,
		Direction: geo.Direction,
		DiskSize:  geo.DiskSize,
	}, sc.Run())

	s.logger.WithFields(logrus.Fields{
		"request_id": reqID,
		"report_id":  rep.ID,
		"requests":   len(sc.Requests),
		"algorithms": sc.AlgorithmNames(),
	}).Debug("scheduled scenario")

	respondOK(w, reqID, rep)
}
