package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/buildbarn/bb-pathname/pkg/clock"
	"github.com/buildbarn/bb-pathname/pkg/normalization"
	"github.com/buildbarn/bb-pathname/pkg/normalization/configuration"
	"github.com/buildbarn/bb-pathname/pkg/program"
	"github.com/buildbarn/bb-pathname/pkg/util"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// A utility for normalizing pathname strings. Pathname strings listed
// in the configuration file are normalized and written to stdout. If an
// HTTP listen address is configured, the utility continues to run,
// normalizing pathname strings submitted through HTTP requests.
//
// Pathname strings may contain single quotes, double quotes and
// backslashes to prevent slashes from separating components, just like
// when they are passed to a shell.

// newRouter creates the HTTP routes of the service. The normalization
// route accepts all methods, leaving it up to the handler to reject
// unsupported ones.
func newRouter(normalizer normalization.Normalizer, gatherer prometheus.Gatherer) *mux.Router {
	router := mux.NewRouter()
	util.RegisterAdministrativeHTTPEndpoints(router, gatherer)
	router.Handle("/normalize", normalization.NewHTTPHandler(normalizer))
	return router
}

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: bb_normalize_path bb_normalize_path.jsonnet")
		}
		var applicationConfiguration configuration.ApplicationConfiguration
		if err := util.UnmarshalConfigurationFromFile(os.Args[1], &applicationConfiguration); err != nil {
			return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
		}

		normalizer, err := configuration.NewNormalizerFromConfiguration(applicationConfiguration.Normalizer)
		if err != nil {
			return util.StatusWrap(err, "Failed to create normalizer")
		}
		for _, p := range applicationConfiguration.Paths {
			fmt.Println(normalizer.Normalize(p))
		}

		listenAddress := applicationConfiguration.HTTPListenAddress
		if listenAddress == "" {
			return nil
		}
		server := &http.Server{
			Addr:    listenAddress,
			Handler: newRouter(normalizer, prometheus.DefaultGatherer),
		}
		siblingsGroup.Go(func(ctx context.Context, siblingsGroup program.Group) error {
			<-ctx.Done()
			shutdownCtx, cancel := clock.SystemClock.NewContextWithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})

		log.Printf("Serving normalization requests on %s", listenAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return util.StatusWrapf(err, "Failed to serve HTTP on %#v", listenAddress)
		}
		return nil
	})
}
