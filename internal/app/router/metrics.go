package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	refreshTargetChannels = "channels"
	refreshTargetEPG      = "epg"

	refreshResultSuccess = "success"
	refreshResultFailure = "failure"
)

var (
	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lgchannels_refresh_total",
		Help: "Refresh attempts of the cached lineup and guide, by target and result.",
	}, []string{"target", "result"})

	cachedChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lgchannels_cached_channels",
		Help: "Number of channels in the cached lineup.",
	})
)
