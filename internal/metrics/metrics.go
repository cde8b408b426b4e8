package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LostReportsFiledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "findit_lost_reports_filed_total",
		Help: "Total number of lost item reports filed.",
	})

	FoundItemsLoggedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "findit_found_items_logged_total",
		Help: "Total number of found items logged by staff.",
	})

	ClaimScansStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "findit_claim_scans_started_total",
		Help: "Total number of verification scans started.",
	})

	ClaimsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "findit_claims_completed_total",
		Help: "Total number of claims completed after successful verification.",
	})

	GreenPointsAwardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "findit_green_points_awarded_total",
		Help: "Total green points awarded across report and recovery flows.",
	})
)
