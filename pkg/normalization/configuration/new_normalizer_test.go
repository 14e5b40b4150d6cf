package configuration_test

import (
	"testing"

	"github.com/buildbarn/bb-pathname/pkg/normalization/configuration"
	"github.com/buildbarn/bb-pathname/pkg/testutil"
	"github.com/buildbarn/bb-pathname/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewNormalizerFromConfiguration(t *testing.T) {
	t.Run("NoConfiguration", func(t *testing.T) {
		_, err := configuration.NewNormalizerFromConfiguration(nil)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "No normalizer configuration provided"), err)
	})

	t.Run("Defaults", func(t *testing.T) {
		n, err := configuration.NewNormalizerFromConfiguration(&configuration.NormalizerConfiguration{})
		require.NoError(t, err)
		require.Equal(t, "a//./'b/c'", n.Normalize("/a//./'b/c'"))
	})

	t.Run("Trimming", func(t *testing.T) {
		n, err := configuration.NewNormalizerFromConfiguration(&configuration.NormalizerConfiguration{
			Name:     "TestNewNormalizerFromConfiguration",
			Trimming: []string{"emptiness", "self"},
		})
		require.NoError(t, err)
		require.Equal(t, "a/'b/c'", n.Normalize("/a//./'b/c'"))
	})

	t.Run("RawFormat", func(t *testing.T) {
		n, err := configuration.NewNormalizerFromConfiguration(&configuration.NormalizerConfiguration{
			Format:   "raw",
			Trimming: []string{"emptiness"},
		})
		require.NoError(t, err)
		require.Equal(t, "a/'b/c'", n.Normalize("a//'b/c'"))
		require.Equal(t, "\\/b", n.Normalize("/\\/b"))
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, err := configuration.NewNormalizerFromConfiguration(&configuration.NormalizerConfiguration{
			Format: "windows",
		})
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid format: Unknown pathname format \"windows\""), err)
	})

	t.Run("InvalidTrimming", func(t *testing.T) {
		_, err := configuration.NewNormalizerFromConfiguration(&configuration.NormalizerConfiguration{
			Trimming: []string{"symlinks"},
		})
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid trimming: Unknown trimming option \"symlinks\""), err)
	})
}

func TestApplicationConfigurationFromJsonnet(t *testing.T) {
	var applicationConfiguration configuration.ApplicationConfiguration
	require.NoError(t, util.UnmarshalConfigurationFromSnippet(
		"bb_normalize_path.jsonnet",
		`{
		  normalizer: { name: 'cli', format: 'quoted', trimming: ['emptiness', 'self'] },
		  paths: ['/usr/./local//bin'],
		  httpListenAddress: std.extVar('LISTEN'),
		}`,
		[]string{"LISTEN=:7980"},
		&applicationConfiguration))
	require.Equal(t, configuration.ApplicationConfiguration{
		Normalizer: &configuration.NormalizerConfiguration{
			Name:     "cli",
			Format:   "quoted",
			Trimming: []string{"emptiness", "self"},
		},
		Paths:             []string{"/usr/./local//bin"},
		HTTPListenAddress: ":7980",
	}, applicationConfiguration)
}
