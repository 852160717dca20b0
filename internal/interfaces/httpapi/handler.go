package httpapi

import (
	"context"
	"net/http"
	"reflect"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

type Handler struct {
	standingService *usecase.StandingService
	leagueService   *usecase.LeagueService
	matchService    *usecase.MatchService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	standingService *usecase.StandingService,
	leagueService *usecase.LeagueService,
	matchService *usecase.MatchService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingService: standingService,
		leagueService:   leagueService,
		matchService:    matchService,
		logger:          logger.Named("httpapi"),
		validator:       newQueryValidator(),
	}
}

// newQueryValidator reports fields by their query parameter name so error
// items point at what the caller actually sent.
func newQueryValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("query"); name != "" && name != "-" {
			return name
		}
		return field.Name
	})
	return v
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return crerr.Mark(crerr.Wrap(err, "validation failed"), usecase.ErrInvalidInput)
	}

	return nil
}

// logFailure keeps client errors at WARN so ERROR only fires for failures the
// caller cannot fix.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}
