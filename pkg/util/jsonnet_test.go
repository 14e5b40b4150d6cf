package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-pathname/pkg/testutil"
	"github.com/buildbarn/bb-pathname/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type exampleConfiguration struct {
	Name     string   `json:"name"`
	Trimming []string `json:"trimming"`
}

func TestUnmarshalConfigurationFromSnippet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromSnippet(
			"example.jsonnet",
			`{ name: std.extVar("NAME"), trimming: ["emptiness"] + ["self"] }`,
			[]string{"NAME=normalizer"},
			&configuration))
		require.Equal(t, exampleConfiguration{
			Name:     "normalizer",
			Trimming: []string{"emptiness", "self"},
		}, configuration)
	})

	t.Run("InvalidEnvironmentVariable", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", `{}`, []string{"NAME"}, &configuration)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid environment variable: \"NAME\""), err)
	})

	t.Run("EvaluationFailure", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", `{ name: error "boom" }`, nil, &configuration)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to evaluate configuration: "), err)
	})

	t.Run("UnknownField", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", `{ nmae: "typo" }`, nil, &configuration)
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to unmarshal configuration: "), err)
	})
}

func TestUnmarshalConfigurationFromFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "config.jsonnet")
		require.NoError(t, os.WriteFile(p, []byte(`{ name: "from-file" }`), 0o644))

		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromFile(p, &configuration))
		require.Equal(t, "from-file", configuration.Name)
	})

	t.Run("NonexistentFile", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(filepath.Join(t.TempDir(), "missing.jsonnet"), &configuration)
		require.Error(t, err)
		require.Contains(t, status.Convert(err).Message(), "Failed to read file contents")
	})
}
