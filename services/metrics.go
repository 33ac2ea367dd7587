package services

import "github.com/prometheus/client_golang/prometheus"

var (
	foodSearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "food_searches_total",
		Help: "Total number of search requests sent to the nutrition API.",
	})
	foodSearchErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "food_search_errors_total",
		Help: "Total number of failed nutrition API searches.",
	})
	recordSavesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "record_saves_total",
		Help: "Total number of records persisted to the store.",
	})
	recordConflictsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "record_conflicts_total",
		Help: "Total number of save attempts rejected as duplicates.",
	})
)

func init() {
	prometheus.MustRegister(
		foodSearchesTotal,
		foodSearchErrorsTotal,
		recordSavesTotal,
		recordConflictsTotal,
	)
}
