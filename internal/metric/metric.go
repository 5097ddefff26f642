package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AttendancesRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meetapp_attendances_registered_total",
		Help: "Attendance registrations that committed",
	})

	AttendancesCanceled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meetapp_attendances_canceled_total",
		Help: "Attendance cancellations that committed",
	})

	MeetupsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meetapp_meetups_created_total",
		Help: "Meetups created",
	})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meetapp_notification_failures_total",
		Help: "Owner notification emails that failed to send",
	})
)
