package postgres

import (
	"context"
	"fmt"

	"github.com/soundministry/escala/pkg/db"
)

// GetOperators retrieves all operators with their restriction days for the
// given month and year eagerly attached
func (d *DB) GetOperators(ctx context.Context, month, year int) ([]db.Operator, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT o.id, o.name, o.monthly_availability, o.weekly_availability,
		       o.annual_availability, o.can_work_alone,
		       COALESCE(r.restricted_days, '{}')
		FROM sound_operator o
		LEFT JOIN monthly_restriction r
		       ON r.operator_id = o.id AND r.month = $1 AND r.year = $2
		ORDER BY o.name
	`, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query operators: %w", err)
	}
	defer rows.Close()

	var operators []db.Operator
	for rows.Next() {
		var o db.Operator
		if err := rows.Scan(&o.ID, &o.Name, &o.MonthlyAvailability, &o.WeeklyAvailability,
			&o.AnnualAvailability, &o.CanWorkAlone, &o.RestrictedDays); err != nil {
			return nil, fmt.Errorf("failed to scan operator: %w", err)
		}
		operators = append(operators, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operators: %w", err)
	}
	return operators, nil
}

// GetServiceDays retrieves all service-day definitions
func (d *DB) GetServiceDays(ctx context.Context) ([]db.ServiceDay, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, weekday, min_operators, max_operators
		FROM service_day
		ORDER BY weekday, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query service days: %w", err)
	}
	defer rows.Close()

	var serviceDays []db.ServiceDay
	for rows.Next() {
		var sd db.ServiceDay
		if err := rows.Scan(&sd.ID, &sd.Name, &sd.Weekday, &sd.MinOperators, &sd.MaxOperators); err != nil {
			return nil, fmt.Errorf("failed to scan service day: %w", err)
		}
		serviceDays = append(serviceDays, sd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service days: %w", err)
	}
	return serviceDays, nil
}

// GetPreferredPairs retrieves all preferred-pair records
func (d *DB) GetPreferredPairs(ctx context.Context) ([]db.PreferredPair, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_operator_id, second_operator_id
		FROM preferred_pair
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferred pairs: %w", err)
	}
	defer rows.Close()

	var pairs []db.PreferredPair
	for rows.Next() {
		var p db.PreferredPair
		if err := rows.Scan(&p.ID, &p.FirstOperatorID, &p.SecondOperatorID); err != nil {
			return nil, fmt.Errorf("failed to scan preferred pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preferred pairs: %w", err)
	}
	return pairs, nil
}
