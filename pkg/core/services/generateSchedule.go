package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/core/model"
	"github.com/soundministry/escala/pkg/core/scheduler"
	"github.com/soundministry/escala/pkg/db"
	"github.com/soundministry/escala/pkg/i18n"
	"github.com/soundministry/escala/pkg/metrics"
)

// ErrScheduleExists is returned when a schedule already exists for the
// requested month and year. Nothing is written in that case.
var ErrScheduleExists = errors.New("schedule already exists for this month and year")

// GenerateScheduleStore defines the database operations needed to generate
// a schedule
type GenerateScheduleStore interface {
	GetScheduleByMonthYear(ctx context.Context, month, year int) (*db.Schedule, error)
	GetServiceDays(ctx context.Context) ([]db.ServiceDay, error)
	GetOperators(ctx context.Context, month, year int) ([]db.Operator, error)
	GetPreferredPairs(ctx context.Context) ([]db.PreferredPair, error)
	GetPublishedAssignments(ctx context.Context, from, to time.Time) ([]db.HistoricalAssignment, error)
	InsertSchedule(ctx context.Context, s *db.Schedule) error
	InsertEvent(ctx context.Context, e *db.ScheduleEvent) error
	InsertAssignment(ctx context.Context, a *db.Assignment) error
}

// GenerateOptions configures one generation run
type GenerateOptions struct {
	Month  int
	Year   int
	Locale string

	// HistoryMonths is the published-history look-back used to seed
	// fairness counts (default 6)
	HistoryMonths int

	// AdjacencyDays is the pre-month window used to seed last-worked dates
	// (default 7)
	AdjacencyDays int

	// Rand drives ranking tie-breaks; a fixed seed makes runs reproducible.
	// Defaults to a time-seeded source.
	Rand *rand.Rand
}

// GenerateResult is the outcome of one generation run. Logs accumulate in
// order: they are kept even when the run fails part-way, and rows written
// before a failure stay in place (the caller may delete the schedule to
// discard a bad run).
type GenerateResult struct {
	Success    bool
	ScheduleID string
	Err        string
	Logs       []string
}

// GenerateSchedule runs the monthly allocation algorithm and persists the
// resulting schedule, events and assignments.
//
// The only hard precondition is uniqueness: if a schedule already exists for
// (month, year) the result carries ErrScheduleExists and nothing is written.
// Per-event shortfalls are logged warnings, never failures. A write error
// aborts the remainder of the run and is reported in the result with the
// logs accumulated so far; there is no rollback.
func GenerateSchedule(ctx context.Context, store GenerateScheduleStore, logger *zap.Logger, opts GenerateOptions) (*GenerateResult, error) {
	if opts.Month < 1 || opts.Month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", opts.Month)
	}
	if opts.HistoryMonths <= 0 {
		opts.HistoryMonths = 6
	}
	if opts.AdjacencyDays <= 0 {
		opts.AdjacencyDays = 7
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	t := i18n.NewTranslator(opts.Locale)
	month := time.Month(opts.Month)

	result := &GenerateResult{}
	result.Logs = append(result.Logs, t.Message("starting", i18n.Args{"month": opts.Month, "year": opts.Year}))

	logger.Info("Starting schedule generation",
		zap.Int("month", opts.Month),
		zap.Int("year", opts.Year),
		zap.String("locale", t.Locale()))

	// Uniqueness check before any writes
	existing, err := store.GetScheduleByMonthYear(ctx, opts.Month, opts.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing schedule: %w", err)
	}
	if existing != nil {
		logger.Warn("Schedule already exists", zap.String("schedule_id", existing.ID))
		result.Err = t.Message("already_exists", i18n.Args{"month": opts.Month, "year": opts.Year})
		metrics.SchedulesGenerated.WithLabelValues("failure").Inc()
		return result, ErrScheduleExists
	}

	// Read-once snapshot: roster, service days, pairs, history
	result.Logs = append(result.Logs, t.Message("loading_data", nil))
	logger.Debug("Loading data")

	serviceDayRecords, err := store.GetServiceDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service days: %w", err)
	}
	operatorRecords, err := store.GetOperators(ctx, opts.Month, opts.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch operators: %w", err)
	}
	pairRecords, err := store.GetPreferredPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferred pairs: %w", err)
	}

	operators := toModelOperators(operatorRecords)
	serviceDays := toModelServiceDays(serviceDayRecords)
	pairs := toModelPairs(pairRecords)

	result.Logs = append(result.Logs,
		t.Message("operators_loaded", i18n.Args{"count": len(operators)}),
		t.Message("service_days_loaded", i18n.Args{"count": len(serviceDays)}),
		t.Message("pairs_loaded", i18n.Args{"count": len(pairs)}))

	logger.Debug("Data loaded",
		zap.Int("operators", len(operators)),
		zap.Int("service_days", len(serviceDays)),
		zap.Int("pairs", len(pairs)))

	// Fairness history over a rolling date window ending at the month start
	firstOfMonth := time.Date(opts.Year, month, 1, 0, 0, 0, 0, time.UTC)
	historyStart := firstOfMonth.AddDate(0, -opts.HistoryMonths, 0)

	history, err := store.GetPublishedAssignments(ctx, historyStart, firstOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment history: %w", err)
	}
	result.Logs = append(result.Logs, t.Message("history_analyzed", i18n.Args{"count": len(history)}))
	logger.Debug("History loaded", zap.Int("assignments", len(history)))

	// Pair compatibility analysis
	pairReports, partnerOf := scheduler.AnalyzePairs(operators, pairs, serviceDays, month)
	for _, report := range pairReports {
		args := i18n.Args{"first": report.FirstName, "second": report.SecondName}
		switch {
		case !report.MonthCompatible:
			result.Logs = append(result.Logs, t.Message("pair_month_incompatible", args))
		case report.Type == scheduler.PairFull:
			result.Logs = append(result.Logs, t.Message("pair_full", args))
		default:
			result.Logs = append(result.Logs, t.Message("pair_partial", args))
		}
	}

	// Allocation state scoped to this invocation
	state := scheduler.NewState(operators, partnerOf, opts.Rand)
	state.SeedHistory(toHistoryRecords(history), firstOfMonth, opts.AdjacencyDays)

	// Calendar expansion
	slots, err := scheduler.ExpandMonth(month, opts.Year, serviceDays)
	if err != nil {
		return nil, fmt.Errorf("failed to expand calendar: %w", err)
	}
	result.Logs = append(result.Logs, t.Message("events_generated", i18n.Args{"count": len(slots)}))
	logger.Info("Calendar expanded", zap.Int("events", len(slots)))

	// From here on every write commits independently; failures abort the
	// rest of the run but leave earlier rows in place
	schedule := &db.Schedule{
		ID:     uuid.New().String(),
		Month:  opts.Month,
		Year:   opts.Year,
		Status: string(model.StatusDraft),
	}
	if err := store.InsertSchedule(ctx, schedule); err != nil {
		return failResult(result, t, logger, err), nil
	}
	result.ScheduleID = schedule.ID
	result.Logs = append(result.Logs, t.Message("schedule_created", i18n.Args{"id": schedule.ID}))
	logger.Info("Schedule created", zap.String("schedule_id", schedule.ID))

	nameByID := make(map[string]string, len(operators))
	for _, op := range operators {
		nameByID[op.ID] = op.Name
	}
	// keyed by ID so operators sharing a name keep separate summary lines
	summary := make(map[string]int, len(operators))
	for _, op := range operators {
		summary[op.ID] = 0
	}

	for i, slot := range slots {
		dateStr := slot.Date.Format("2006-01-02")
		result.Logs = append(result.Logs, t.Message("event_header", i18n.Args{
			"index": i + 1,
			"total": len(slots),
			"name":  slot.ServiceDay.Name,
			"date":  dateStr,
		}))

		event := &db.ScheduleEvent{
			ID:           uuid.New().String(),
			ScheduleID:   schedule.ID,
			Date:         slot.Date,
			Name:         slot.ServiceDay.Name,
			MinOperators: slot.ServiceDay.MinOperators,
			MaxOperators: slot.ServiceDay.MaxOperators,
		}
		if err := store.InsertEvent(ctx, event); err != nil {
			return failResult(result, t, logger, err), nil
		}
		metrics.EventsCreated.Inc()

		allocation := state.AllocateEvent(slot)
		result.Logs = append(result.Logs, t.Message("eligible_count", i18n.Args{"count": allocation.EligibleCount}))

		if allocation.EligibleCount == 0 {
			result.Logs = append(result.Logs, t.Message("no_candidates", nil))
			logger.Warn("No candidates for event",
				zap.String("event", slot.ServiceDay.Name),
				zap.String("date", dateStr))
		}

		for _, selection := range allocation.Selections {
			for _, operatorID := range selection.OperatorIDs {
				assignment := &db.Assignment{
					ID:         uuid.New().String(),
					EventID:    event.ID,
					OperatorID: operatorID,
					IsManual:   false,
				}
				if err := store.InsertAssignment(ctx, assignment); err != nil {
					return failResult(result, t, logger, err), nil
				}
				metrics.AssignmentsCreated.WithLabelValues("automatic").Inc()
				summary[operatorID]++
			}

			if selection.Paired {
				result.Logs = append(result.Logs, t.Message("allocated_pair", i18n.Args{
					"first":  nameByID[selection.OperatorIDs[0]],
					"second": nameByID[selection.OperatorIDs[1]],
				}))
			} else {
				operatorID := selection.OperatorIDs[0]
				result.Logs = append(result.Logs, t.Message("allocated_single", i18n.Args{
					"name":  nameByID[operatorID],
					"count": state.Stats(operatorID).AllocationCount,
				}))
			}
		}

		if allocation.Shortfall {
			result.Logs = append(result.Logs, t.Message("shortfall", i18n.Args{
				"allocated": allocation.Allocated,
				"min":       slot.ServiceDay.MinOperators,
			}))
			metrics.Shortfalls.Inc()
			logger.Warn("Event shortfall",
				zap.String("event", slot.ServiceDay.Name),
				zap.String("date", dateStr),
				zap.Int("allocated", allocation.Allocated),
				zap.Int("min", slot.ServiceDay.MinOperators))
		} else {
			result.Logs = append(result.Logs, t.Message("event_filled", i18n.Args{
				"allocated": allocation.Allocated,
				"max":       slot.ServiceDay.MaxOperators,
			}))
		}
	}

	// Per-operator summary, busiest first
	result.Logs = append(result.Logs, t.Message("summary_header", nil))
	ids := make([]string, 0, len(summary))
	for id := range summary {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if summary[ids[i]] != summary[ids[j]] {
			return summary[ids[i]] > summary[ids[j]]
		}
		return nameByID[ids[i]] < nameByID[ids[j]]
	})
	for _, id := range ids {
		result.Logs = append(result.Logs, t.Message("summary_line", i18n.Args{"name": nameByID[id], "count": summary[id]}))
	}

	result.Logs = append(result.Logs, t.Message("success", nil))
	result.Success = true
	metrics.SchedulesGenerated.WithLabelValues("success").Inc()
	logger.Info("Schedule generation completed", zap.String("schedule_id", schedule.ID))

	return result, nil
}

// failResult records a mid-run persistence failure. Rows committed by
// earlier steps are intentionally left in place.
func failResult(result *GenerateResult, t *i18n.Translator, logger *zap.Logger, err error) *GenerateResult {
	logger.Error("Schedule generation failed", zap.Error(err))
	result.Success = false
	result.Err = err.Error()
	result.Logs = append(result.Logs, t.Message("failed", i18n.Args{"message": err.Error()}))
	metrics.SchedulesGenerated.WithLabelValues("failure").Inc()
	return result
}
