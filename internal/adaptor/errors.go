package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinebook/internal/data/entity"
	"cinebook/pkg/utils"
)

// handleServiceError maps service errors to the response envelope. Services
// wrap the sentinel errors with context, so matching goes through errors.Is.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, entity.ErrSeatUnavailable),
		errors.Is(err, entity.ErrAlreadyCancelled),
		errors.Is(err, entity.ErrDuplicateID):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, entity.ErrInvalidSeat),
		errors.Is(err, entity.ErrEmptySelection):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, entity.ErrForbidden):
		utils.ResponseForbidden(w, "You do not have access to this resource")
	case strings.HasPrefix(err.Error(), "validation failed"):
		utils.ResponseBadRequest(w, err.Error(), nil)
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}
