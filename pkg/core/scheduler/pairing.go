package scheduler

import (
	"time"

	"github.com/soundministry/escala/pkg/core/model"
)

// PairType classifies how broadly a preferred pair's availabilities overlap
type PairType string

const (
	// PairFull means both operators accept exactly the same service days
	PairFull PairType = "FULL"

	// PairPartial means the operators overlap on some service days only
	PairPartial PairType = "PARTIAL"
)

// PairReport describes one preferred pair's compatibility for the target month
type PairReport struct {
	PairID     string
	FirstName  string
	SecondName string
	Type       PairType

	// MonthCompatible is false when either operator does not accept the
	// target month; such pairs are excluded from the partner map
	MonthCompatible bool

	// CompatibleServiceDayIDs are service days both operators accept
	CompatibleServiceDayIDs []string
}

// AnalyzePairs inspects preferred pairs against the roster and service days
// for the target month. It returns a report entry per pair (for the log
// trail) and the bidirectional partner map consulted during allocation.
//
// Pairs where either operator does not accept the target month, or where the
// two operators share no service day, do not enter the partner map. An
// operator appearing in more than one pair keeps its first bond.
func AnalyzePairs(operators []model.Operator, pairs []model.PreferredPair, serviceDays []model.ServiceDay, month time.Month) ([]PairReport, map[string]string) {
	byID := make(map[string]model.Operator, len(operators))
	for _, op := range operators {
		byID[op.ID] = op
	}

	reports := make([]PairReport, 0, len(pairs))
	partnerOf := make(map[string]string)

	for _, pair := range pairs {
		first, okFirst := byID[pair.FirstOperatorID]
		second, okSecond := byID[pair.SecondOperatorID]
		if !okFirst || !okSecond {
			continue
		}

		report := PairReport{
			PairID:     pair.ID,
			FirstName:  first.Name,
			SecondName: second.Name,
		}

		var firstDayCount, secondDayCount int
		for _, sd := range serviceDays {
			firstAccepts := acceptsServiceDay(first, sd)
			secondAccepts := acceptsServiceDay(second, sd)
			if firstAccepts {
				firstDayCount++
			}
			if secondAccepts {
				secondDayCount++
			}
			if firstAccepts && secondAccepts {
				report.CompatibleServiceDayIDs = append(report.CompatibleServiceDayIDs, sd.ID)
			}
		}

		shared := len(report.CompatibleServiceDayIDs)
		if firstDayCount == secondDayCount && shared == firstDayCount && shared > 0 {
			report.Type = PairFull
		} else {
			report.Type = PairPartial
		}

		monthToken := model.MonthToken(month)
		report.MonthCompatible = contains(first.AnnualAvailability, monthToken) &&
			contains(second.AnnualAvailability, monthToken)

		reports = append(reports, report)

		if !report.MonthCompatible || shared == 0 {
			continue
		}

		_, firstBonded := partnerOf[first.ID]
		_, secondBonded := partnerOf[second.ID]
		if firstBonded || secondBonded {
			continue
		}

		partnerOf[first.ID] = second.ID
		partnerOf[second.ID] = first.ID
	}

	return reports, partnerOf
}

func acceptsServiceDay(op model.Operator, sd model.ServiceDay) bool {
	token := model.WeekdayToken(sd.Weekday)
	for _, slot := range op.WeeklyAvailability {
		if slot == sd.ID || slot == token {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
