package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	uploadsAcceptedTotal atomic.Uint64
	uploadsRejected      = newLabeledCounter("reason")
	httpRequests         = newLabeledCounter("method", "status")

	uploadValidationDuration = newHistogram([]float64{1, 5, 10, 50, 100, 250, 500, 1000, 2500})
)

// IncUploadAccepted increments the accepted uploads counter.
func IncUploadAccepted() {
	uploadsAcceptedTotal.Add(1)
}

// IncUploadRejected increments the rejected uploads counter for reason.
func IncUploadRejected(reason string) {
	uploadsRejected.Inc(reason)
}

// ObserveUploadValidationMs records how long validating an upload took.
func ObserveUploadValidationMs(value float64) {
	if value < 0 {
		value = 0
	}
	uploadValidationDuration.Observe(value)
}

// Middleware counts every request by method and status code.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		httpRequests.Inc(c.Request.Method, strconv.Itoa(c.Writer.Status()))
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	httpRequests.write(&buf, "http_requests_total", "Total HTTP requests handled")
	writeCounter(&buf, "uploads_accepted_total", "Total uploads that passed validation", uploadsAcceptedTotal.Load())
	uploadsRejected.write(&buf, "uploads_rejected_total", "Total uploads rejected by validation")
	writeHistogram(&buf, "upload_validation_duration_ms", "Upload validation duration in milliseconds", uploadValidationDuration.Snapshot())
	return buf.String()
}

type labeledCounter struct {
	mu     sync.Mutex
	labels []string
	values map[string]uint64
}

func newLabeledCounter(labels ...string) *labeledCounter {
	return &labeledCounter{labels: labels, values: make(map[string]uint64)}
}

func (l *labeledCounter) Inc(values ...string) {
	key := strings.Join(values, "\x00")
	l.mu.Lock()
	l.values[key]++
	l.mu.Unlock()
}

func (l *labeledCounter) write(buf *bytes.Buffer, name, help string) {
	l.mu.Lock()
	keys := make([]string, 0, len(l.values))
	for k := range l.values {
		keys = append(keys, k)
	}
	counts := make(map[string]uint64, len(l.values))
	for k, v := range l.values {
		counts[k] = v
	}
	l.mu.Unlock()
	sort.Strings(keys)

	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	for _, key := range keys {
		values := strings.Split(key, "\x00")
		pairs := make([]string, 0, len(l.labels))
		for i, label := range l.labels {
			v := ""
			if i < len(values) {
				v = values[i]
			}
			pairs = append(pairs, fmt.Sprintf("%s=%q", label, v))
		}
		fmt.Fprintf(buf, "%s{%s} %d\n", name, strings.Join(pairs, ","), counts[key])
	}
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe records value in the first bucket that holds it; buckets are summed on render.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
