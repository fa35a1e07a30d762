// Package metrics содержит метрики Prometheus сервиса сортировки отходов.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "waste_sorting"

// Metrics объединяет бизнес-метрики и метрики HTTP.
// Методы безопасно вызывать на nil-указателе.
type Metrics struct {
	deposits        *prometheus.CounterVec
	noSuitableBin   *prometheus.CounterVec
	pointsAwarded   prometheus.Counter
	carbonImpact    prometheus.Counter
	redemptions     *prometheus.CounterVec
	binFill         *prometheus.GaugeVec
	httpRequests    *prometheus.CounterVec
	httpRequestTime *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в registry
func New(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		deposits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposits_total",
			Help:      "Total number of waste deposits by bin category.",
		}, []string{"bin_category"}),
		noSuitableBin: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_suitable_bin_total",
			Help:      "Deposits rejected because no bin of the category had spare capacity.",
		}, []string{"bin_category"}),
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Total number of points awarded for deposits.",
		}),
		carbonImpact: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "carbon_saved_kg_total",
			Help:      "Estimated CO2e saved by recycling and composting, in kilograms.",
		}),
		redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_total",
			Help:      "Total number of redeemed rewards.",
		}, []string{"reward_id"}),
		binFill: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bin_fill_percentage",
			Help:      "Current fill percentage of each bin.",
		}, []string{"bin_id", "bin_category"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		m.deposits,
		m.noSuitableBin,
		m.pointsAwarded,
		m.carbonImpact,
		m.redemptions,
		m.binFill,
		m.httpRequests,
		m.httpRequestTime,
	)
	return m
}

// RecordDeposit учитывает выброс отходов
func (m *Metrics) RecordDeposit(binCategory string, points int, carbonKg float64) {
	if m == nil {
		return
	}
	m.deposits.WithLabelValues(binCategory).Inc()
	m.pointsAwarded.Add(float64(points))
	// Counter не принимает отрицательные значения, выбросы в общий контейнер не учитываются
	if carbonKg > 0 {
		m.carbonImpact.Add(carbonKg)
	}
}

// RecordNoSuitableBin учитывает отказ из-за отсутствия свободного контейнера
func (m *Metrics) RecordNoSuitableBin(binCategory string) {
	if m == nil {
		return
	}
	m.noSuitableBin.WithLabelValues(binCategory).Inc()
}

// RecordRedemption учитывает погашение награды
func (m *Metrics) RecordRedemption(rewardID string) {
	if m == nil {
		return
	}
	m.redemptions.WithLabelValues(rewardID).Inc()
}

// SetBinFill обновляет заполненность контейнера
func (m *Metrics) SetBinFill(binID, binCategory string, fill int) {
	if m == nil {
		return
	}
	m.binFill.WithLabelValues(binID, binCategory).Set(float64(fill))
}

// GinMiddleware собирает метрики HTTP-запросов
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestTime.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
