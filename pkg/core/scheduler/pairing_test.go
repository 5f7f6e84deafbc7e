package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundministry/escala/pkg/core/model"
)

var pairingServiceDays = []model.ServiceDay{
	{ID: "sd-sun", Name: "Sunday Service", Weekday: time.Sunday, MinOperators: 1, MaxOperators: 2},
	{ID: "sd-wed", Name: "Midweek", Weekday: time.Wednesday, MinOperators: 1, MaxOperators: 1},
}

func pairingOperator(id string, weekly []string) model.Operator {
	op := testOperator(id)
	op.WeeklyAvailability = weekly
	return op
}

func TestAnalyzePairs_FullCompatibility(t *testing.T) {
	operators := []model.Operator{
		pairingOperator("op-a", []string{"SUNDAY", "WEDNESDAY"}),
		pairingOperator("op-b", []string{"sd-sun", "sd-wed"}),
	}
	pairs := []model.PreferredPair{
		{ID: "pair-1", FirstOperatorID: "op-a", SecondOperatorID: "op-b"},
	}

	reports, partnerOf := AnalyzePairs(operators, pairs, pairingServiceDays, time.February)

	require.Len(t, reports, 1)
	assert.Equal(t, PairFull, reports[0].Type)
	assert.True(t, reports[0].MonthCompatible)
	assert.ElementsMatch(t, []string{"sd-sun", "sd-wed"}, reports[0].CompatibleServiceDayIDs)

	assert.Equal(t, "op-b", partnerOf["op-a"])
	assert.Equal(t, "op-a", partnerOf["op-b"])
}

func TestAnalyzePairs_PartialCompatibility(t *testing.T) {
	operators := []model.Operator{
		pairingOperator("op-a", []string{"SUNDAY", "WEDNESDAY"}),
		pairingOperator("op-b", []string{"SUNDAY"}),
	}
	pairs := []model.PreferredPair{
		{ID: "pair-1", FirstOperatorID: "op-a", SecondOperatorID: "op-b"},
	}

	reports, partnerOf := AnalyzePairs(operators, pairs, pairingServiceDays, time.February)

	require.Len(t, reports, 1)
	assert.Equal(t, PairPartial, reports[0].Type)
	assert.Equal(t, []string{"sd-sun"}, reports[0].CompatibleServiceDayIDs)
	assert.Equal(t, "op-b", partnerOf["op-a"])
}

func TestAnalyzePairs_NoSharedServiceDays(t *testing.T) {
	operators := []model.Operator{
		pairingOperator("op-a", []string{"SUNDAY"}),
		pairingOperator("op-b", []string{"WEDNESDAY"}),
	}
	pairs := []model.PreferredPair{
		{ID: "pair-1", FirstOperatorID: "op-a", SecondOperatorID: "op-b"},
	}

	reports, partnerOf := AnalyzePairs(operators, pairs, pairingServiceDays, time.February)

	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].CompatibleServiceDayIDs)
	assert.Empty(t, partnerOf)
}

func TestAnalyzePairs_MonthIncompatibleExcludedFromBonding(t *testing.T) {
	first := pairingOperator("op-a", []string{"SUNDAY"})
	second := pairingOperator("op-b", []string{"SUNDAY"})
	second.AnnualAvailability = []string{"JANUARY"}

	pairs := []model.PreferredPair{
		{ID: "pair-1", FirstOperatorID: "op-a", SecondOperatorID: "op-b"},
	}

	reports, partnerOf := AnalyzePairs([]model.Operator{first, second}, pairs, pairingServiceDays, time.February)

	require.Len(t, reports, 1)
	assert.False(t, reports[0].MonthCompatible)
	assert.Empty(t, partnerOf)
}

func TestAnalyzePairs_FirstBondWins(t *testing.T) {
	operators := []model.Operator{
		pairingOperator("op-a", []string{"SUNDAY"}),
		pairingOperator("op-b", []string{"SUNDAY"}),
		pairingOperator("op-c", []string{"SUNDAY"}),
	}
	pairs := []model.PreferredPair{
		{ID: "pair-1", FirstOperatorID: "op-a", SecondOperatorID: "op-b"},
		{ID: "pair-2", FirstOperatorID: "op-b", SecondOperatorID: "op-c"},
	}

	_, partnerOf := AnalyzePairs(operators, pairs, pairingServiceDays, time.February)

	assert.Equal(t, "op-b", partnerOf["op-a"])
	assert.Equal(t, "op-a", partnerOf["op-b"])
	_, bonded := partnerOf["op-c"]
	assert.False(t, bonded)
}

func TestAnalyzePairs_UnknownOperatorSkipped(t *testing.T) {
	operators := []model.Operator{
		pairingOperator("op-a", []string{"SUNDAY"}),
	}
	pairs := []model.PreferredPair{
		{ID: "pair-1", FirstOperatorID: "op-a", SecondOperatorID: "op-missing"},
	}

	reports, partnerOf := AnalyzePairs(operators, pairs, pairingServiceDays, time.February)

	assert.Empty(t, reports)
	assert.Empty(t, partnerOf)
}
