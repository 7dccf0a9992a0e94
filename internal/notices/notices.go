// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package notices

import (
	"log/slog"
	"sync"

	"github.com/cobaltcore-dev/admin-dashboard/pkg/monitoring"
	"github.com/prometheus/client_golang/prometheus"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// User-facing message shown on top of the rendered page.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Metrics about the notices shown to users.
type Monitor struct {
	// Counts the notices raised, by page.
	NoticesCounter *prometheus.CounterVec
}

func NewMonitor(registry *monitoring.Registry) Monitor {
	noticesCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_notices_total",
		Help: "Number of notices shown to users",
	}, []string{"page"})
	registry.MustRegister(noticesCounter)
	return Monitor{NoticesCounter: noticesCounter}
}

// Create a queue for one request to the given page.
func (m Monitor) NewQueue(page string, logger *slog.Logger) *Queue {
	q := NewQueue(logger)
	if m.NoticesCounter != nil {
		q.counter = m.NoticesCounter.WithLabelValues(page)
	}
	return q
}

// Notices collected while handling one request.
// Each message is kept once, no matter how often it was raised.
type Queue struct {
	mu      sync.Mutex
	notices []Notice
	log     *slog.Logger
	counter prometheus.Counter
}

func NewQueue(logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{log: logger}
}

// Add a notice unless a notice with the same level and message is queued.
func (q *Queue) Add(level Level, msg string) {
	if q.add(Notice{Level: level, Message: msg}) && q.counter != nil {
		q.counter.Inc()
	}
}

func (q *Queue) add(notice Notice) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, n := range q.notices {
		if n == notice {
			return false
		}
	}
	q.notices = append(q.notices, notice)
	return true
}

func (q *Queue) Error(msg string)   { q.Add(LevelError, msg) }
func (q *Queue) Warning(msg string) { q.Add(LevelWarning, msg) }
func (q *Queue) Info(msg string)    { q.Add(LevelInfo, msg) }
func (q *Queue) Success(msg string) { q.Add(LevelSuccess, msg) }

// Log the error and queue the message as error notice.
func (q *Queue) Fail(msg string, err error) {
	q.log.Error("degraded request", "notice", msg, "error", err)
	q.Error(msg)
}

// Logger of the request the queue belongs to.
func (q *Queue) Logger() *slog.Logger {
	return q.log
}

// Copy of the queued notices in the order they were raised.
func (q *Queue) Notices() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	result := make([]Notice, len(q.notices))
	copy(result, q.notices)
	return result
}

// Number of queued notices with the given level.
func (q *Queue) Count(level Level) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, notice := range q.notices {
		if notice.Level == level {
			n++
		}
	}
	return n
}

// Run fetch and return its result. If fetch fails, the error is logged,
// msg is queued as error notice and fallback is returned instead.
func Attempt[T any](q *Queue, msg string, fallback T, fetch func() (T, error)) T {
	value, err := fetch()
	if err != nil {
		q.Fail(msg, err)
		return fallback
	}
	return value
}
