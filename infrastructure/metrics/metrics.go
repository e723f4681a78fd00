package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RemindersDispatchedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reminders_dispatched_total",
			Help: "Total number of due reminders published to the broker",
		},
	)

	NotificationsSentCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_for_time",
			Help: "Number of reminder notifications delivered, with timestamp as a label",
		},
		[]string{"timestamp"},
	)
)

func Init() {
	prometheus.MustRegister(RemindersDispatchedCounter)
	prometheus.MustRegister(NotificationsSentCounterVec)
}

func StartMetricsServer(port string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics server running on %s", port)
		if err := http.ListenAndServe(port, nil); err != nil {
			log.Fatalf("failed to start metrics server: %v", err)
		}
	}()
}

func ReminderDispatched() {
	RemindersDispatchedCounter.Inc()
}

func NotificationSent() {
	NotificationsSentCounterVec.WithLabelValues(time.Now().Format("2006-01-02 15:04:05")).Inc()
}
