package cancel_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/bookings"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct {
	userID    string
	bookingID string
	err       error
}

func (f *fakeService) CancelOwn(_ context.Context, userID string, bookingID string) error {
	f.userID, f.bookingID = userID, bookingID
	return f.err
}

func serve(svc *fakeService, authenticated bool) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/bookings/{bookingId}/cancel", NewHandler(svc, logger.NewNop()).Handle)

	r := httptest.NewRequest(http.MethodPatch, "/api/bookings/b1/cancel", nil)
	if authenticated {
		r = r.WithContext(middleware.WithUser(r.Context(), "u1", domain.RoleUser))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", svc.userID)
	assert.Equal(t, "b1", svc.bookingID)
	assert.JSONEq(t, `{"message":"`+msgCancelled+`"}`, w.Body.String())
}

func TestHandle_Unauthenticated(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.bookingID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{bookings.ErrInvalidInput, http.StatusBadRequest},
		{bookings.ErrBookingNotFound, http.StatusNotFound},
		{bookings.ErrAccessDenied, http.StatusForbidden},
		{bookings.ErrTimeout, http.StatusGatewayTimeout},
		{bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serve(&fakeService{err: fmt.Errorf("%w: details", tt.err)}, true)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
