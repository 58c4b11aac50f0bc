package misc

import (
	"github.com/go-pkgz/lgr"
	"github.com/prometheus/client_golang/prometheus"
)

// L is logger
var L = lgr.New(lgr.Msec, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)

// TaskErrors is error metrics
var TaskErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "rockrev_errors",
}, []string{"error"})

// NotifyAttempts counts notification deliveries by outcome
var NotifyAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "rockrev_notify_attempts",
}, []string{"result"})

// Registry is the metrics registry exposed on /metrics
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(TaskErrors, NotifyAttempts)
}
