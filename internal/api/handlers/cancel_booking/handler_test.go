package cancel_booking

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petspa/PetSpa-BookingService/internal/api/middleware"
	"github.com/petspa/PetSpa-BookingService/internal/service/bookings"
	"github.com/petspa/PetSpa-BookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingService struct {
	err error

	bookingID int64
	req       *models.CancelBookingRequest
}

func (f *fakeBookingService) Cancel(_ context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	f.bookingID = bookingID
	f.req = req
	return f.err
}

func doCancel(svc *fakeBookingService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/42/cancel", bytes.NewBufferString(body))
	req.Header.Set("X-User-ID", "100")
	req = mux.SetURLVars(req, map[string]string{"bookingId": "42"})

	w := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(w, req)
	return w
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeBookingService{}

	w := doCancel(svc, `{"cancellationReason":"планы изменились"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len(), "204 response must have an empty body")
	assert.Empty(t, w.Header().Get("Content-Type"))

	assert.Equal(t, int64(42), svc.bookingID)
	require.NotNil(t, svc.req)
	assert.Equal(t, int64(100), svc.req.UserID)
	assert.Equal(t, "планы изменились", svc.req.CancellationReason)
}

func TestHandle_CannotCancel(t *testing.T) {
	svc := &fakeBookingService{err: bookings.ErrCannotCancel}

	w := doCancel(svc, `{"cancellationReason":"передумал"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeBookingService{err: bookings.ErrBookingNotFound}

	w := doCancel(svc, `{}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
