package httptransport

import (
	"errors"
	"net/http"

	derrors "crypto-tracker-backend/internal/errors"
	"crypto-tracker-backend/internal/ports/errcode"
)

// FromServiceError — перевод ошибок сервисного слоя в код границы и
// HTTP-статус. Malformed отличим от NotFound: клиент должен видеть
// разницу между «данных нет» и «API сломал контракт».
func FromServiceError(err error) (errcode.Code, int) {
	switch {
	case errors.Is(err, derrors.ErrInvalidCurrency):
		return errcode.InvalidCurrency, http.StatusBadRequest
	case errors.Is(err, derrors.ErrInvalidDateRange):
		return errcode.BadRequest, http.StatusBadRequest
	case errors.Is(err, derrors.ErrDataMalformed):
		return errcode.MalformedData, http.StatusBadRequest
	case errors.Is(err, derrors.ErrDataUnavailable):
		return errcode.NotFoundData, http.StatusNotFound
	case errors.Is(err, derrors.ErrUpstreamUnavailable):
		return errcode.UpstreamDown, http.StatusServiceUnavailable
	default:
		return errcode.Internal, http.StatusInternalServerError
	}
}
