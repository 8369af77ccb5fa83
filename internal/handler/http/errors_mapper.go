package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet-lock/internal/agent"
)

var errorStatusMap = map[error]int{
	agent.ErrInvalidChallenge: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
