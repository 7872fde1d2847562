// Package service contains the report submission workflow
package service

import (
	"context"
	"strings"
	"time"

	"flagwatch/internal/core/flagcal"
	"flagwatch/internal/core/normalize"
	"flagwatch/internal/modkit/repokit"
	perr "flagwatch/internal/platform/errors"
	"flagwatch/internal/platform/logger"
	"flagwatch/internal/platform/store"
	"flagwatch/internal/services/api/reports/domain"
	"flagwatch/internal/services/api/reports/repo"

	"github.com/google/uuid"
)

// MirrorTable is the clickhouse table receiving submission events
const MirrorTable = "flag_report_events"

// Service defines the reports service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the reports service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cal    *flagcal.Calendar
	mirror store.Clickhouse
	log    logger.Logger
}

// New constructs a reports service. mirror may be nil when the analytics
// backend is disabled
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cal *flagcal.Calendar, mirror store.Clickhouse, log logger.Logger) *Svc {
	if db == nil {
		panic("reports.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reports.Service requires a non nil Repo binder")
	}
	if cal == nil {
		panic("reports.Service requires a non nil Calendar")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		cal:    cal,
		mirror: mirror,
		log:    log.With().Str("component", "reports").Logger(),
	}
}

// Submit validates and stores one flag sighting report
func (s *Svc) Submit(ctx context.Context, in domain.SubmitInput) (domain.SubmitResult, error) {
	day, err := s.cal.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return domain.SubmitResult{}, perr.WithField(err, "date")
	}
	// today is fine, tomorrow is not
	if day.After(s.cal.Today()) {
		return domain.SubmitResult{}, perr.WithField(
			perr.InvalidArgf("date cannot be in the future"), "date")
	}

	flagTime := strings.TrimSpace(in.Time)
	if flagTime == "" {
		return domain.SubmitResult{}, perr.WithField(
			perr.Validationf("time is required"), "time")
	}

	flagType := normalize.Category(in.FlagType)
	if flagType == "" {
		return domain.SubmitResult{}, perr.WithField(
			perr.Validationf("flag_type is required"), "flag_type")
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return domain.SubmitResult{}, perr.WithField(
			perr.Validationf("description is required"), "description")
	}

	rep := repo.Report{
		ID:          uuid.NewString(),
		FlagDate:    day,
		FlagTime:    flagTime,
		FlagType:    flagType,
		Description: desc,
		Email:       strings.TrimSpace(in.Email),
		Status:      repo.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, rep); err != nil {
		return domain.SubmitResult{}, err
	}

	s.mirrorEvent(ctx, rep)

	return domain.SubmitResult{ID: rep.ID, Status: rep.Status}, nil
}

// mirrorEvent forwards the accepted report to the analytics backend.
// Failures are logged, never surfaced; the row of record already landed in pg
func (s *Svc) mirrorEvent(ctx context.Context, rep repo.Report) {
	if s.mirror == nil {
		return
	}
	err := s.mirror.Insert(ctx, MirrorTable,
		[]string{"id", "flag_date", "flag_type", "created_at"},
		rep.ID, rep.FlagDate.Format(flagcal.DateLayout), rep.FlagType, rep.CreatedAt,
	)
	if err != nil {
		s.log.Warn().Err(err).Str("report_id", rep.ID).Msg("analytics mirror insert failed")
	}
}
