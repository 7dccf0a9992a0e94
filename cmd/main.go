// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sapcc/go-api-declarations/bininfo"
	"github.com/sapcc/go-bits/httpext"
	"github.com/sapcc/go-bits/must"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/cobaltcore-dev/admin-dashboard/internal/admin"
	"github.com/cobaltcore-dev/admin-dashboard/internal/web"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/conf"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/keystone"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/monitoring"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/openstack"
	"github.com/cobaltcore-dev/admin-dashboard/pkg/sso"
)

// Run the prometheus metrics server for monitoring.
func runMonitoringServer(ctx context.Context, registry *monitoring.Registry, config conf.MonitoringConfig) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	slog.Info("metrics listening", "port", config.Port)
	return httpext.ListenAndServeContext(ctx, fmt.Sprintf(":%d", config.Port), mux)
}

// Run the dashboard server with all admin panels.
func runAPIServer(ctx context.Context, api admin.HTTPAPI, config conf.APIConfig) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	api.Init(mux)
	slog.Info("api listening", "port", config.Port)
	return httpext.ListenAndServeContext(ctx, fmt.Sprintf(":%d", config.Port), web.WithRequestID(mux))
}

func main() {
	// If called with `--version`, report version and exit (the Dockerfile
	// uses this to check if the binary was built correctly)
	bininfo.HandleVersionArgument()

	must.Succeed(conf.LoadDotenv(".env"))
	config := conf.GetConfigOrDie[*conf.Config]()
	config.KeystoneConfig.OverrideFromEnv()
	config.LoggingConfig.SetDefaultLogger()
	must.Succeed(config.Validate())

	// Set runtime concurrency to match CPU limit imposed by Kubernetes
	undoMaxprocs := must.Return(maxprocs.Set(maxprocs.Logger(slog.Debug)))
	defer undoMaxprocs()

	// Override User-Agent header for all requests made by this process
	wrap := httpext.WrapTransport(&http.DefaultTransport)
	wrap.SetOverrideUserAgent(bininfo.Component(), bininfo.VersionOr("rolling"))

	// This context will gracefully shutdown when the process receives the
	// standard shutdown signal SIGINT, with a 10-second delay to allow
	// Kubernetes to stop sending new requests well before the process starts
	// to shut down.
	ctx := httpext.ContextWithSIGINT(context.Background(), 10*time.Second)

	registry := monitoring.NewRegistry(config.MonitoringConfig)

	httpClient := must.Return(sso.NewHTTPClient(config.SSOConfig))
	keystoneAPI := keystone.NewKeystoneClientWithHTTPClient(config.KeystoneConfig, httpClient)
	openstackMonitor := openstack.NewMonitor(registry)
	compute := openstack.NewComputeAPI(openstackMonitor, keystoneAPI)
	identity := openstack.NewIdentityAPI(openstackMonitor, keystoneAPI)
	networking := openstack.NewNetworkingAPI(openstackMonitor, keystoneAPI)
	for _, client := range []interface{ Init(context.Context) error }{compute, identity, networking} {
		must.Succeed(client.Init(ctx))
	}

	api := admin.NewAPI(config.DashboardConfig, registry, compute, identity, networking)

	wg, ctx := errgroup.WithContext(ctx)
	wg.Go(func() error { return runMonitoringServer(ctx, registry, config.MonitoringConfig) })
	wg.Go(func() error { return runAPIServer(ctx, api, config.APIConfig) })
	if err := wg.Wait(); err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
