// Package modkit provides module wiring and core deps
package modkit

import (
	"flagwatch/internal/core/flagcal"
	"flagwatch/internal/modkit/repokit"
	"flagwatch/internal/platform/config"
	"flagwatch/internal/platform/logger"
	"flagwatch/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	Cal *flagcal.Calendar
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
