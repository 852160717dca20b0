package httpapi

import "net/http"

func (h *Handler) ListTeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeamStandings")
	defer span.End()

	result, err := h.standingService.ListTeamStandings(ctx)
	if err != nil {
		h.logFailure(ctx, "list team standings failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStandingsToDTO(result))
}

func (h *Handler) ListPlayerStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayerStandings")
	defer span.End()

	result, err := h.standingService.ListPlayerStandings(ctx)
	if err != nil {
		h.logFailure(ctx, "list player standings failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStandingsToDTO(result))
}

func (h *Handler) GetDataQualityReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetDataQualityReport")
	defer span.End()

	report, err := h.standingService.DataQualityReport(ctx)
	if err != nil {
		h.logFailure(ctx, "build data quality report failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dataQualityToDTO(report))
}
