package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := NewMockRequestRecorder(ctrl)

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.Get("/modules/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	gomock.InOrder(
		recorder.EXPECT().IncInFlight(),
		recorder.EXPECT().RecordRequest(http.MethodGet, "/modules/{id}", http.StatusNotFound, gomock.Any()),
		recorder.EXPECT().DecInFlight(),
	)

	req := httptest.NewRequest(http.MethodGet, "/modules/42", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetricsMiddleware_Unmatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := NewMockRequestRecorder(ctrl)
	recorder.EXPECT().IncInFlight()
	recorder.EXPECT().RecordRequest(http.MethodGet, "unmatched", http.StatusOK, gomock.Any())
	recorder.EXPECT().DecInFlight()

	handler := MetricsMiddleware(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
}
