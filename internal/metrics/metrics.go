package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	ScansRecorded    *prometheus.CounterVec
	ImportRows       *prometheus.CounterVec
	QRCodesGenerated *prometheus.CounterVec
	OTPIssued        prometheus.Counter
	OTPVerified      *prometheus.CounterVec
	Errors           *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			ScansRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "qr_scans_recorded_total",
				Help:      "Total QR scan events recorded.",
			}, []string{"target"}),
			ImportRows: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bulk_import_rows_total",
				Help:      "Total bulk import rows processed by kind and outcome.",
			}, []string{"kind", "outcome"}),
			QRCodesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "qr_codes_generated_total",
				Help:      "Total QR code images generated.",
			}, []string{"target"}),
			OTPIssued: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "otp_issued_total",
				Help:      "Total OTP codes issued.",
			}),
			OTPVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "otp_verifications_total",
				Help:      "Total OTP verification attempts by outcome.",
			}, []string{"outcome"}),
			Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total errors grouped by component.",
			}, []string{"component"}),
		}

		prometheus.MustRegister(
			metricsInstance.ScansRecorded,
			metricsInstance.ImportRows,
			metricsInstance.QRCodesGenerated,
			metricsInstance.OTPIssued,
			metricsInstance.OTPVerified,
			metricsInstance.Errors,
		)
	})
	return metricsInstance
}
