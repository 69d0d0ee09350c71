package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReportPublisher hands a finished weekly report to a downstream consumer.
type ReportPublisher interface {
	PublishWeeklyReport(ctx context.Context, userID uint, report *WeeklyReportResult) error
}

// ReportScheduler builds every user's weekly report on a cron schedule and
// pushes it to realtime listeners and, when configured, a publisher.
type ReportScheduler struct {
	cron      *cron.Cron
	schedule  string
	users     UserStore
	reports   *ReportService
	notifier  ChangeNotifier
	publisher ReportPublisher
	now       func() time.Time
	timeout   time.Duration
	logger    *zap.Logger
}

func NewReportScheduler(
	schedule string,
	users UserStore,
	reports *ReportService,
	notifier ChangeNotifier,
	publisher ReportPublisher,
	logger *zap.Logger,
) *ReportScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportScheduler{
		cron:      cron.New(cron.WithLocation(reports.Location())),
		schedule:  schedule,
		users:     users,
		reports:   reports,
		notifier:  notifier,
		publisher: publisher,
		now:       time.Now,
		timeout:   5 * time.Minute,
		logger:    logger,
	}
}

func (s *ReportScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runScheduled); err != nil {
		return fmt.Errorf("schedule weekly digest %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("report scheduler started", zap.String("schedule", s.schedule))
	return nil
}

// Stop halts the schedule; the returned context is done once a running digest finishes.
func (s *ReportScheduler) Stop() context.Context {
	s.logger.Info("stopping report scheduler")
	return s.cron.Stop()
}

func (s *ReportScheduler) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.RunWeeklyDigest(ctx); err != nil {
		s.logger.Error("weekly digest finished with errors", zap.Error(err))
	}
}

// RunWeeklyDigest reports the current week for every user. A failure for one
// user does not stop the others; all failures are joined into the result.
func (s *ReportScheduler) RunWeeklyDigest(ctx context.Context) error {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	now := s.now()
	var errs []error
	sent := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		report, err := s.reports.WeeklyReport(ctx, id, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("user %d: %w", id, err))
			continue
		}
		if s.notifier != nil {
			s.notifier.Broadcast(id, EventWeeklyReport, report)
		}
		if s.publisher != nil {
			if err := s.publisher.PublishWeeklyReport(ctx, id, report); err != nil {
				errs = append(errs, fmt.Errorf("user %d: publish: %w", id, err))
				continue
			}
		}
		sent++
	}

	s.logger.Info("weekly digest done", zap.Int("users", len(ids)), zap.Int("sent", sent), zap.Int("failed", len(errs)))
	return errors.Join(errs...)
}
