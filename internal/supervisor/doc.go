// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

/*
Package supervisor provides process supervision using suture v4.

The tree keeps the long-running parts of the process alive with
Erlang/OTP-style restarts and a bounded graceful shutdown:

	RootSupervisor ("maximo-analytics")
	├── StoreSupervisor ("store-layer")
	│   └── PoolStatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with backoff once FailureThreshold is exceeded
within the FailureDecay window. Supervisor events are logged through
sutureslog into the zerolog logger (see logging.NewSlogLogger).

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddStoreService(services.NewPoolStatsService(db, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Service implementations live in the services subpackage.
*/
package supervisor
