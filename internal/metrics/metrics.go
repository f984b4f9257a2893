package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics regroupe les métriques Prometheus de l'application
type Metrics struct {
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	TalentsCreated       prometheus.Counter
	VerificationsToggled prometheus.Counter
}

// New crée et enregistre les métriques sur le registre donné
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cdt_http_requests_total",
			Help: "Nombre total de requêtes HTTP traitées",
		}, []string{"method", "path", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cdt_http_request_duration_seconds",
			Help:    "Durée des requêtes HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		TalentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "cdt_talents_created_total",
			Help: "Nombre total de cartes de talents soumises",
		}),
		VerificationsToggled: factory.NewCounter(prometheus.CounterOpts{
			Name: "cdt_verifications_toggled_total",
			Help: "Nombre total de basculements du statut de vérification",
		}),
	}
}
