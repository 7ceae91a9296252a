package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/utils"
)

const hashHeader = "HashSHA256"

// withIntegrityCheck verifies the HashSHA256 header against the raw request
// body. Requests without the header pass through unchecked. A mismatch is
// answered with 400. The body is restored for the next handler.
//
// The HMAC key is App.HashKey, installed by NewHandler.
func (h *Handler) withIntegrityCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		expected := r.Header.Get(hashHeader)
		if expected == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		actual := hex.EncodeToString(utils.Hash(body))
		if !hmac.Equal([]byte(actual), []byte(expected)) {
			log.Warn().
				Str("hash from request", expected).
				Str("hashed body", actual).
				Msg("hashes are not equal")
			utils.WriteMessage(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
