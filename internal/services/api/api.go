// Package api provides the HTTP API for the application
package api

import (
	"flagwatch/internal/core/flagcal"
	"flagwatch/internal/platform/config"
	"flagwatch/internal/platform/logger"
	phttp "flagwatch/internal/platform/net/http"
	"flagwatch/internal/platform/store"

	"flagwatch/internal/modkit"
	"flagwatch/internal/modkit/httpkit"
	"flagwatch/internal/modkit/module"
	"flagwatch/internal/modkit/swaggerkit"

	flagsmod "flagwatch/internal/services/api/flags/module"
	metamod "flagwatch/internal/services/api/meta/module"
	reportsmod "flagwatch/internal/services/api/reports/module"
	tablesmod "flagwatch/internal/services/api/tables/module"
)

// DefaultTimezone anchors month and day windows when none is configured
const DefaultTimezone = "America/Chicago"

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	zone := opt.Config.MayString("TIMEZONE", DefaultTimezone)
	cal, err := flagcal.New(zone)
	if err != nil {
		opt.Logger.Panic().Err(err).Str("zone", zone).Msg("calendar init failed")
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		Cal: cal,
	}

	mods := []module.Module{
		metamod.New(deps),
		flagsmod.New(deps),
		reportsmod.New(deps),
		tablesmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler live at the root, outside /api/v1
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
