package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildbarn/bb-pathname/internal/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)

	normalizer := mock.NewMockNormalizer(ctrl)
	router := newRouter(normalizer, prometheus.NewRegistry())

	t.Run("Normalize", func(t *testing.T) {
		normalizer.EXPECT().Normalize("./a").Return("a")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/normalize?path=./a", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "a\n", rec.Body.String())
	})

	t.Run("UnsupportedMethod", func(t *testing.T) {
		// Methods are rejected by the handler, not by the router.
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/normalize", nil))
		require.Equal(t, http.StatusNotImplemented, rec.Code)
		require.Equal(t, "Method \"PUT\" is not supported\n", rec.Body.String())
	})

	t.Run("Healthy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/-/healthy", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
