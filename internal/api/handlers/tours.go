package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/metrics"
	"tour-planner-service/internal/ports"
	"tour-planner-service/internal/services"
)

// TourHandler orchestrates one planning run per request: location
// discovery, distance matrix assembly, and the external solver call.
type TourHandler struct {
	Repo   ports.LocationRepository
	Source ports.LocationSource
	Solver ports.TourSolver
}

func (h *TourHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanTourRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	var (
		report *services.TourReport
		err    error
	)

	if req.UseStored {
		locs, lerr := h.Repo.ListLocations(r.Context())
		if lerr != nil {
			log.Printf("plan tour: list locations failed: %v", lerr)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		set, serr := domain.NewLocationSetFrom(locs)
		if serr != nil {
			log.Printf("plan tour: stored locations invalid: %v", serr)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}

		report, err = services.PlanTourForSet(r.Context(), set, h.Solver, nil, req.Closed)
	} else {
		if h.Source == nil {
			writeError(w, r, http.StatusBadRequest, "no location source configured; use use_stored")
			return
		}
		report, err = services.PlanTour(r.Context(), h.Source, h.Solver, nil, req.Closed)
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyInput):
			writeError(w, r, http.StatusUnprocessableEntity, "no locations to plan")
		case errors.Is(err, domain.ErrSolverOutputMismatch):
			log.Printf("plan tour: solver mismatch: %v", err)
			writeError(w, r, http.StatusBadGateway, "solver returned an invalid tour")
		default:
			log.Printf("plan tour failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	metrics.TourStops.Observe(float64(report.Tour.Set.Len()))

	legs := make([]dto.TourLegResponse, 0, len(report.Legs))
	for _, leg := range report.Legs {
		legs = append(legs, dto.TourLegResponse{From: leg.From, To: leg.To, Miles: leg.Miles})
	}

	res := dto.TourResponse{
		TourID:     uuid.NewString(),
		Closed:     report.Closed,
		Order:      report.Tour.LocationIDs(),
		Legs:       legs,
		TotalMiles: report.TotalMiles,
		Stats: dto.MatrixStatsResponse{
			Pairs: report.Stats.Pairs,
			Min:   report.Stats.Min,
			Max:   report.Stats.Max,
			Mean:  report.Stats.Mean,
		},
	}

	writeJSON(w, r, http.StatusOK, res)
}
