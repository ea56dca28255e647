package v1

import (
	"errors"
	"net/http"

	"github.com/hearthledger/backend/internal/models"
	"github.com/hearthledger/backend/internal/storage"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a store error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, storage.ErrStorage) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errInvestmentNotSet    = errors.New("the monthlyInvestment query parameter must be set to a positive decimal")
)
