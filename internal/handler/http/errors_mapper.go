package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/service"
	"github.com/MKhiriev/go-customer-portal/internal/utils"
)

// errorResponse binds a service error kind to the status and message an
// endpoint answers with.
type errorResponse struct {
	kind    error
	status  int
	message string
}

var errorStatusMap = map[error]int{
	service.ErrValidation:   http.StatusBadRequest,
	service.ErrUnauthorized: http.StatusUnauthorized,
	service.ErrNotFound:     http.StatusNotFound,
	service.ErrConflict:     http.StatusConflict,
	service.ErrInternal:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the first entry of responses matching err, or with
// the generic mapping. Internal details are logged, never written.
func writeError(w http.ResponseWriter, r *http.Request, err error, responses []errorResponse) {
	log := logger.FromRequest(r)

	for _, resp := range responses {
		if errors.Is(err, resp.kind) {
			log.Warn().Err(err).Int("status", resp.status).Send()
			utils.WriteMessage(w, resp.message, resp.status)
			return
		}
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Send()
	}
	utils.WriteMessage(w, http.StatusText(status), status)
}
