package httptransport

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	derrors "crypto-tracker-backend/internal/errors"
	"crypto-tracker-backend/internal/ports/errcode"
)

func TestFromServiceError(t *testing.T) {
	cases := []struct {
		err        error
		wantCode   errcode.Code
		wantStatus int
	}{
		{derrors.ErrInvalidCurrency, errcode.InvalidCurrency, http.StatusBadRequest},
		{derrors.ErrInvalidDateRange, errcode.BadRequest, http.StatusBadRequest},
		{derrors.ErrDataMalformed, errcode.MalformedData, http.StatusBadRequest},
		{derrors.ErrDataUnavailable, errcode.NotFoundData, http.StatusNotFound},
		{derrors.ErrUpstreamUnavailable, errcode.UpstreamDown, http.StatusServiceUnavailable},
		{errors.New("boom"), errcode.Internal, http.StatusInternalServerError},
		// обёрнутые ошибки распознаются через errors.Is
		{fmt.Errorf("%w: no price series for symbol bitcoin", derrors.ErrDataUnavailable), errcode.NotFoundData, http.StatusNotFound},
	}

	for _, tc := range cases {
		code, status := FromServiceError(tc.err)
		if code != tc.wantCode || status != tc.wantStatus {
			t.Fatalf("FromServiceError(%v) = (%s, %d), want (%s, %d)", tc.err, code, status, tc.wantCode, tc.wantStatus)
		}
	}
}
