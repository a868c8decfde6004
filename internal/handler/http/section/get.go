package section

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"propellus-site/internal/handler/http/respond"
	"propellus-site/internal/infra/cms"
	"propellus-site/internal/observability/logging"
	sectionUC "propellus-site/internal/usecase/section"
)

// GetHandler serves one section. When Name is empty the section is taken
// from the {name} path value.
type GetHandler struct {
	Svc  *sectionUC.Service
	Name string
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := h.Name
	if name == "" {
		name = r.PathValue("name")
	}

	sec, err := h.Svc.Get(r.Context(), name)
	if err != nil {
		appErr := toAppError(name, err)
		logging.FromContext(r.Context()).Warn("section request failed",
			slog.String("section", name),
			slog.Int("status", appErr.Code),
			slog.Any("error", respond.SanitizeError(err)))
		respond.Fail(w, appErr)
		return
	}

	respond.Data(w, sec)
}

// toAppError maps a section read failure onto the error envelope. Upstream
// statuses are mirrored; everything else without a known status is a 500.
func toAppError(name string, err error) *respond.AppError {
	if errors.Is(err, sectionUC.ErrUnknownSection) {
		return respond.NewAppError(http.StatusNotFound, fmt.Sprintf("unknown section %q", name), nil)
	}

	if se, ok := cms.AsStatusError(err); ok {
		code := se.Code
		if code < 400 || code > 599 {
			code = http.StatusBadGateway
		}
		return respond.NewAppError(code, se.Error(), err).WithDetails(se.Body)
	}

	var msg string
	switch {
	case errors.Is(err, cms.ErrCircuitOpen):
		msg = "content repository temporarily unavailable"
	case errors.Is(err, cms.ErrTimeout):
		msg = "content repository read timed out"
	case errors.Is(err, cms.ErrBodyTooLarge):
		msg = "content repository response too large"
	default:
		msg = "failed to fetch content"
	}
	return respond.NewAppError(http.StatusInternalServerError, msg, err).WithDetails(err.Error())
}
