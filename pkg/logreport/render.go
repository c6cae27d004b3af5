package logreport

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

const (
	ReportPerformance    = "performance"
	ReportRagPerformance = "rag-performance"
	ReportErrors         = "errors"
	ReportBusiness       = "business"
)

var Reports = []string{ReportPerformance, ReportRagPerformance, ReportErrors, ReportBusiness}

const (
	slowEndpointMs      = 1000
	highErrorRatePct    = 5
	lowRagSuccessPct    = 90
	recentErrorsPrinted = 5
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	warn    = color.New(color.FgYellow)
	dim     = color.New(color.Faint)
	rule    = strings.Repeat("=", 60)
)

// Render writes one report over entries. lastHours is only echoed in the header.
func Render(w io.Writer, report string, entries []Entry, lastHours int) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No log entries to analyze")
		return nil
	}

	fmt.Fprintf(w, "Analyzing %d log entries\n", len(entries))
	if lastHours > 0 {
		fmt.Fprintf(w, "Last %d hours\n", lastHours)
	}
	fmt.Fprintln(w, rule)

	switch report {
	case ReportPerformance:
		renderPerformance(w, Performance(entries))
	case ReportRagPerformance:
		renderRag(w, RagPerformance(entries))
	case ReportErrors:
		renderErrors(w, Errors(entries))
	case ReportBusiness:
		renderBusiness(w, Business(entries))
	default:
		return fmt.Errorf("unknown report %q, expected one of %s", report, strings.Join(Reports, ", "))
	}
	return nil
}

func title(w io.Writer, s string) {
	heading.Fprintln(w, s)
	fmt.Fprintln(w, rule)
}

func renderPerformance(w io.Writer, stats []EndpointStats) {
	title(w, "ENDPOINT PERFORMANCE REPORT")
	for _, s := range stats {
		fmt.Fprintf(w, "\n%s\n", s.Endpoint)
		fmt.Fprintf(w, "   Total requests: %d\n", s.TotalRequests)
		fmt.Fprintf(w, "   Average time: %.2fms\n", s.AvgDurationMs)
		fmt.Fprintf(w, "   Range: %.2fms - %.2fms\n", s.MinDurationMs, s.MaxDurationMs)
		fmt.Fprintf(w, "   Success rate: %.1f%%\n", s.SuccessRate)
		fmt.Fprintf(w, "   Error rate: %.1f%%\n", s.ErrorRate)
		fmt.Fprintf(w, "   Status codes: %s\n", formatStatuses(s.StatusDistribution))

		if s.ErrorRate > highErrorRatePct {
			warn.Fprintln(w, "   High error rate!")
		}
		if s.AvgDurationMs > slowEndpointMs {
			warn.Fprintln(w, "   Slow endpoint!")
		}
	}
}

func formatStatuses(dist map[int]int) string {
	codes := make([]int, 0, len(dist))
	for c := range dist {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, fmt.Sprintf("%d=%d", c, dist[c]))
	}
	return strings.Join(parts, " ")
}

func renderRag(w io.Writer, s RagStats) {
	title(w, "RAG PERFORMANCE REPORT")
	if s.Total == 0 {
		fmt.Fprintln(w, "No RAG communications found")
		return
	}
	fmt.Fprintf(w, "Total Communications: %d\n", s.Total)
	fmt.Fprintf(w, "Successful Communications: %d\n", s.Successes)
	fmt.Fprintf(w, "Timeout Count: %d\n", s.Timeouts)
	fmt.Fprintf(w, "Error Count: %d\n", s.Errors)
	if s.Successes == 0 {
		return
	}
	fmt.Fprintf(w, "Avg Response Time: %.2fms\n", s.AvgResponseMs)
	fmt.Fprintf(w, "Min Response Time: %.2fms\n", s.MinResponseMs)
	fmt.Fprintf(w, "Max Response Time: %.2fms\n", s.MaxResponseMs)
	fmt.Fprintf(w, "Success rate: %.1f%%\n", s.SuccessRate)
	if s.SuccessRate < lowRagSuccessPct {
		warn.Fprintln(w, "   Low RAG success rate!")
	}
}

func renderErrors(w io.Writer, s ErrorStats) {
	title(w, "ERROR REPORT")
	fmt.Fprintf(w, "Total errors: %d\n", s.Total)

	fmt.Fprintln(w, "\nMost frequent error types:")
	for _, c := range s.Types {
		fmt.Fprintf(w, "   %s: %d\n", c.Key, c.Count)
	}

	fmt.Fprintln(w, "\nError contexts:")
	for _, c := range s.Contexts {
		fmt.Fprintf(w, "   %s: %d\n", c.Key, c.Count)
	}

	fmt.Fprintln(w, "\nRecent errors:")
	for i, e := range s.Recent {
		if i == recentErrorsPrinted {
			break
		}
		dim.Fprintf(w, "   [%s] ", e.Timestamp)
		fmt.Fprintf(w, "%s: %s\n", e.Level, e.Message)
	}
}

func renderBusiness(w io.Writer, s BusinessStats) {
	title(w, "BUSINESS EVENTS REPORT")
	fmt.Fprintf(w, "Total events: %d\n", s.Total)

	fmt.Fprintln(w, "\nEvent types:")
	for _, c := range s.EventTypes {
		fmt.Fprintf(w, "   %s: %d\n", c.Key, c.Count)
	}

	fmt.Fprintln(w, "\nEntity types:")
	for _, c := range s.EntityTypes {
		fmt.Fprintf(w, "   %s: %d\n", c.Key, c.Count)
	}

	fmt.Fprintln(w, "\nRecent events:")
	for _, e := range s.Recent {
		dim.Fprintf(w, "   [%s] ", e.Timestamp)
		fmt.Fprintf(w, "%s %s#%d (user %d)\n", e.EventType, e.EntityType, e.EntityID, e.UserID)
	}
}
