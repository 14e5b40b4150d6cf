package util_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/buildbarn/bb-pathname/pkg/testutil"
	"github.com/buildbarn/bb-pathname/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusWrap(t *testing.T) {
	t.Run("PreservesCode", func(t *testing.T) {
		err := util.StatusWrapf(status.Error(codes.NotFound, "Path not found"), "Normalizer %#v", "default")
		testutil.RequireEqualStatus(t, status.Error(codes.NotFound, "Normalizer \"default\": Path not found"), err)
	})

	t.Run("NonStatusError", func(t *testing.T) {
		err := util.StatusWrap(errors.New("disk on fire"), "Failed to read")
		testutil.RequireEqualStatus(t, status.Error(codes.Unknown, "Failed to read: disk on fire"), err)
	})

	t.Run("WithCode", func(t *testing.T) {
		err := util.StatusWrapWithCode(errors.New("unexpected token"), codes.InvalidArgument, "Failed to parse")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Failed to parse: unexpected token"), err)
	})
}

func TestHTTPStatusCodeFromError(t *testing.T) {
	require.Equal(t, http.StatusOK, util.HTTPStatusCodeFromError(nil))
	require.Equal(t, http.StatusBadRequest, util.HTTPStatusCodeFromError(status.Error(codes.InvalidArgument, "Bad")))
	require.Equal(t, http.StatusNotFound, util.HTTPStatusCodeFromError(status.Error(codes.NotFound, "Missing")))
	require.Equal(t, http.StatusInternalServerError, util.HTTPStatusCodeFromError(errors.New("plain")))
}

func TestMust(t *testing.T) {
	require.Equal(t, 42, util.Must(42, nil))
	require.Panics(t, func() { util.Must(0, errors.New("broken")) })
}
