package services

import (
	"time"

	"github.com/soundministry/escala/pkg/core/model"
	"github.com/soundministry/escala/pkg/core/scheduler"
	"github.com/soundministry/escala/pkg/db"
)

func toModelOperators(records []db.Operator) []model.Operator {
	operators := make([]model.Operator, len(records))
	for i, r := range records {
		operators[i] = model.Operator{
			ID:                  r.ID,
			Name:                r.Name,
			MonthlyAvailability: r.MonthlyAvailability,
			WeeklyAvailability:  r.WeeklyAvailability,
			AnnualAvailability:  r.AnnualAvailability,
			CanWorkAlone:        r.CanWorkAlone,
			RestrictedDays:      r.RestrictedDays,
		}
	}
	return operators
}

func toModelServiceDays(records []db.ServiceDay) []model.ServiceDay {
	serviceDays := make([]model.ServiceDay, len(records))
	for i, r := range records {
		serviceDays[i] = model.ServiceDay{
			ID:           r.ID,
			Name:         r.Name,
			Weekday:      time.Weekday(r.Weekday),
			MinOperators: r.MinOperators,
			MaxOperators: r.MaxOperators,
		}
	}
	return serviceDays
}

func toModelPairs(records []db.PreferredPair) []model.PreferredPair {
	pairs := make([]model.PreferredPair, len(records))
	for i, r := range records {
		pairs[i] = model.PreferredPair{
			ID:               r.ID,
			FirstOperatorID:  r.FirstOperatorID,
			SecondOperatorID: r.SecondOperatorID,
		}
	}
	return pairs
}

func toHistoryRecords(records []db.HistoricalAssignment) []scheduler.HistoryRecord {
	history := make([]scheduler.HistoryRecord, len(records))
	for i, r := range records {
		history[i] = scheduler.HistoryRecord{
			OperatorID: r.OperatorID,
			EventDate:  r.EventDate,
		}
	}
	return history
}
