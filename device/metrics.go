// SPDX-License-Identifier: MIT

package device

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	uploads     prometheus.Counter
	uploadBytes prometheus.Counter
	rejected    prometheus.Counter
	liveTensors prometheus.Gauge
}

// newMetrics builds the backend collectors. A nil reg leaves them unregistered.
func newMetrics(reg prometheus.Registerer, backend string) *metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"backend": backend}

	return &metrics{
		uploads: f.NewCounter(prometheus.CounterOpts{
			Name:        "densela_device_uploads_total",
			Help:        "Total number of matrix payloads decoded into tensors",
			ConstLabels: labels,
		}),
		uploadBytes: f.NewCounter(prometheus.CounterOpts{
			Name:        "densela_device_upload_bytes_total",
			Help:        "Total payload bytes accepted by Upload",
			ConstLabels: labels,
		}),
		rejected: f.NewCounter(prometheus.CounterOpts{
			Name:        "densela_device_rejected_payloads_total",
			Help:        "Total number of payloads rejected as malformed",
			ConstLabels: labels,
		}),
		liveTensors: f.NewGauge(prometheus.GaugeOpts{
			Name:        "densela_device_live_tensors",
			Help:        "Tensors handed out by Upload and not yet released",
			ConstLabels: labels,
		}),
	}
}
