// Package metrics provides Prometheus observability for schedule generation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the application
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// SchedulesGenerated counts completed generation runs by outcome.
var SchedulesGenerated = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "escala",
	Name:      "schedules_generated_total",
	Help:      "Schedule generation runs, labelled by outcome (success or failure)",
}, []string{"outcome"})

// EventsCreated counts schedule events written during generation runs.
var EventsCreated = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "escala",
	Name:      "events_created_total",
	Help:      "Schedule events created by generation runs",
})

// AssignmentsCreated counts assignments by origin (automatic or manual).
var AssignmentsCreated = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "escala",
	Name:      "assignments_created_total",
	Help:      "Assignments created, labelled by origin (automatic or manual)",
}, []string{"origin"})

// Shortfalls counts events that ended below their minimum headcount.
// Persistently high values indicate an under-staffed roster.
var Shortfalls = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "escala",
	Name:      "event_shortfalls_total",
	Help:      "Events that ended with fewer assignments than their configured minimum",
})
