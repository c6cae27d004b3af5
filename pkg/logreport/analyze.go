package logreport

import (
	"math"
	"sort"
	"strings"
)

const (
	requestsLogger = "maverik.requests"
	ragLogger      = "maverik.rag"
	businessLogger = "maverik.business"

	topN          = 10
	maxMessageLen = 200
	unknown       = "unknown"
)

type EndpointStats struct {
	Endpoint           string
	TotalRequests      int
	AvgDurationMs      float64
	MinDurationMs      float64
	MaxDurationMs      float64
	SuccessRate        float64
	ErrorRate          float64
	StatusDistribution map[int]int
}

// Performance groups request records by endpoint, busiest first.
func Performance(entries []Entry) []EndpointStats {
	byEndpoint := map[string]*EndpointStats{}
	var order []string

	for _, e := range entries {
		if e.Logger() != requestsLogger || !e.Has("duration_ms") {
			continue
		}
		endpoint := e.Str("endpoint")
		if endpoint == "" {
			endpoint = unknown
		}
		s, ok := byEndpoint[endpoint]
		if !ok {
			s = &EndpointStats{Endpoint: endpoint, StatusDistribution: map[int]int{}}
			byEndpoint[endpoint] = s
			order = append(order, endpoint)
		}

		d := e.Get("duration_ms").Float()
		if s.TotalRequests == 0 || d < s.MinDurationMs {
			s.MinDurationMs = d
		}
		if d > s.MaxDurationMs {
			s.MaxDurationMs = d
		}
		s.AvgDurationMs += d
		s.TotalRequests++

		status := int(e.Get("http_status").Int())
		s.StatusDistribution[status]++
		switch {
		case status >= 200 && status < 400:
			s.SuccessRate++
		case status >= 400:
			s.ErrorRate++
		}
	}

	out := make([]EndpointStats, 0, len(order))
	for _, endpoint := range order {
		s := byEndpoint[endpoint]
		n := float64(s.TotalRequests)
		s.AvgDurationMs = round2(s.AvgDurationMs / n)
		s.SuccessRate = s.SuccessRate / n * 100
		s.ErrorRate = s.ErrorRate / n * 100
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalRequests > out[j].TotalRequests })
	return out
}

type RagStats struct {
	Total         int
	Successes     int
	Timeouts      int
	Errors        int
	AvgResponseMs float64
	MinResponseMs float64
	MaxResponseMs float64
	SuccessRate   float64
}

// RagPerformance classifies RAG call records by their outcome field, falling back to the message.
func RagPerformance(entries []Entry) RagStats {
	var s RagStats
	var sum float64

	for _, e := range entries {
		if e.Logger() != ragLogger {
			continue
		}
		s.Total++

		switch ragOutcome(e) {
		case "success":
			d := e.Get("duration_ms").Float()
			if s.Successes == 0 || d < s.MinResponseMs {
				s.MinResponseMs = d
			}
			if d > s.MaxResponseMs {
				s.MaxResponseMs = d
			}
			sum += d
			s.Successes++
		case "timeout":
			s.Timeouts++
		case "error":
			s.Errors++
		}
	}

	if s.Successes > 0 {
		s.AvgResponseMs = round2(sum / float64(s.Successes))
		s.SuccessRate = float64(s.Successes) / float64(s.Total) * 100
	}
	return s
}

func ragOutcome(e Entry) string {
	if o := e.Str("outcome"); o != "" {
		return o
	}
	msg := strings.ToLower(e.Message())
	switch {
	case strings.Contains(msg, "succe"):
		return "success"
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return "timeout"
	case e.Level() == "ERROR":
		return "error"
	}
	return ""
}

type Count struct {
	Key   string
	Count int
}

type ErrorRecord struct {
	Timestamp string
	Level     string
	Message   string
	ErrorType string
}

type ErrorStats struct {
	Total    int
	Types    []Count
	Contexts []Count
	Recent   []ErrorRecord
}

var errorLevels = map[string]bool{
	"ERROR":    true,
	"CRITICAL": true,
	"DPANIC":   true,
	"PANIC":    true,
	"FATAL":    true,
}

// Errors counts error-level records by error_type and by a coarse context.
func Errors(entries []Entry) ErrorStats {
	var s ErrorStats
	types := map[string]int{}
	contexts := map[string]int{}
	var errs []Entry

	for _, e := range entries {
		if !errorLevels[e.Level()] {
			continue
		}
		errs = append(errs, e)

		t := e.Str("error_type")
		if t == "" {
			t = unknown
		}
		types[t]++
		contexts[errorContext(e.Message())]++
	}

	s.Total = len(errs)
	s.Types = top(types, topN)
	s.Contexts = top(contexts, 0)

	for _, e := range mostRecent(errs, topN) {
		t := e.Str("error_type")
		if t == "" {
			t = unknown
		}
		s.Recent = append(s.Recent, ErrorRecord{
			Timestamp: e.Str("timestamp"),
			Level:     e.Level(),
			Message:   truncate(e.Message(), maxMessageLen),
			ErrorType: t,
		})
	}
	return s
}

func errorContext(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(message, "RAG"):
		return "RAG Communication"
	case strings.Contains(lower, "auth"):
		return "Authentication"
	case strings.Contains(lower, "database") || strings.Contains(lower, "db"):
		return "Database"
	default:
		return "Other"
	}
}

type BusinessRecord struct {
	Timestamp  string
	EventType  string
	EntityType string
	EntityID   int64
	UserID     int64
}

type BusinessStats struct {
	Total       int
	EventTypes  []Count
	EntityTypes []Count
	Recent      []BusinessRecord
}

// Business counts maverik.business records by event and entity type.
func Business(entries []Entry) BusinessStats {
	var s BusinessStats
	events := map[string]int{}
	entities := map[string]int{}
	var biz []Entry

	for _, e := range entries {
		if e.Logger() != businessLogger {
			continue
		}
		biz = append(biz, e)
		events[orUnknown(e.Str("event_type"))]++
		entities[orUnknown(e.Str("entity_type"))]++
	}

	s.Total = len(biz)
	s.EventTypes = top(events, topN)
	s.EntityTypes = top(entities, 0)
	for _, e := range mostRecent(biz, topN) {
		s.Recent = append(s.Recent, BusinessRecord{
			Timestamp:  e.Str("timestamp"),
			EventType:  e.Str("event_type"),
			EntityType: e.Str("entity_type"),
			EntityID:   e.Get("entity_id").Int(),
			UserID:     e.Get("user_id").Int(),
		})
	}
	return s
}

// top sorts counts descending, ties by key. n <= 0 keeps all.
func top(counts map[string]int, n int) []Count {
	out := make([]Count, 0, len(counts))
	for k, c := range counts {
		out = append(out, Count{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// mostRecent orders by timestamp string, newest first. The timestamps are fixed-width UTC.
func mostRecent(entries []Entry, n int) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Str("timestamp") > sorted[j].Str("timestamp")
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
