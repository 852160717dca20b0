package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/golf-league/internal/domain/match"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()

	teams, err := h.leagueService.ListTeams(ctx)
	if err != nil {
		h.logFailure(ctx, "list teams failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayers")
	defer span.End()

	query := listPlayersQuery{Type: strings.TrimSpace(r.URL.Query().Get("type"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.leagueService.ListPlayers(ctx, query.Type)
	if err != nil {
		h.logFailure(ctx, "list players failed", err, "player_type", query.Type)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatches")
	defer span.End()

	values := r.URL.Query()
	week, err := parseIntQuery(values, "week", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := listMatchesQuery{Week: week, Status: strings.TrimSpace(values.Get("status"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := match.Filter{WeekNumber: query.Week}
	if query.Status != "" {
		status, err := match.ParseStatus(query.Status)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
		filter.Status = status
	}

	matches, err := h.matchService.ListMatches(ctx, filter)
	if err != nil {
		h.logFailure(ctx, "list matches failed", err, "week", query.Week, "status", query.Status)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetMatchPoints")
	defer span.End()

	path := matchPointsPath{MatchID: strings.TrimSpace(r.PathValue("matchID"))}
	if err := h.validateRequest(ctx, path); err != nil {
		writeError(ctx, w, err)
		return
	}

	points, err := h.matchService.GetAggregatePoints(ctx, path.MatchID)
	if err != nil {
		h.logFailure(ctx, "get match points failed", err, "match_id", path.MatchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchPointsToDTO(points))
}

func (h *Handler) PreviewRoundRobin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "PreviewRoundRobin")
	defer span.End()

	startWeek, err := parseIntQuery(r.URL.Query(), "start_week", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := roundRobinQuery{StartWeek: startWeek}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.leagueService.PreviewRoundRobin(ctx, query.StartWeek)
	if err != nil {
		h.logFailure(ctx, "preview round robin failed", err, "start_week", query.StartWeek)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
