package configuration

import (
	"github.com/buildbarn/bb-pathname/pkg/clock"
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathname/pkg/normalization"
	"github.com/buildbarn/bb-pathname/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewNormalizerFromConfiguration creates a Normalizer based on
// parameters provided in a configuration file. The Normalizer is
// instrumented with Prometheus metrics.
func NewNormalizerFromConfiguration(configuration *NormalizerConfiguration) (normalization.Normalizer, error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "No normalizer configuration provided")
	}

	format, err := path.NewFormatFromName(configuration.Format)
	if err != nil {
		return nil, util.StatusWrap(err, "Invalid format")
	}
	trimming, err := path.NewTrimmingFromNames(configuration.Trimming)
	if err != nil {
		return nil, util.StatusWrap(err, "Invalid trimming")
	}

	name := configuration.Name
	if name == "" {
		name = "default"
	}
	return normalization.NewMetricsNormalizer(
		normalization.NewTrimmingNormalizer(
			format,
			trimming,
			normalization.NewMetricsComponentVisitor(name)),
		clock.SystemClock,
		name), nil
}
