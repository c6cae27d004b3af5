// Package logreport aggregates the JSON log lines written by the service into
// endpoint, RAG, error and business-event reports.
package logreport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const DefaultLogFile = "logs/maverik_backend.log"

const maxLineSize = 1024 * 1024

// Entry is one decoded log record.
type Entry struct {
	gjson.Result
}

func (e Entry) Str(key string) string {
	return e.Get(key).String()
}

func (e Entry) Has(key string) bool {
	return e.Get(key).Exists()
}

func (e Entry) Logger() string  { return e.Str("logger") }
func (e Entry) Level() string   { return strings.ToUpper(e.Str("level")) }
func (e Entry) Message() string { return e.Str("message") }

func (e Entry) Timestamp() (time.Time, bool) {
	raw := e.Str("timestamp")
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Load reads one record per line. Malformed lines are skipped. When since is non-zero,
// records older than since, or without a parseable timestamp, are dropped.
func Load(r io.Reader, since time.Time) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var entries []Entry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !gjson.Valid(line) {
			continue
		}
		res := gjson.Parse(line)
		if !res.IsObject() {
			continue
		}
		e := Entry{Result: res}
		if !since.IsZero() {
			t, ok := e.Timestamp()
			if !ok || t.Before(since) {
				continue
			}
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("failed to read log: %w", err)
	}
	return entries, nil
}

// LoadFile opens path and keeps the records of the last lastHours hours (all when lastHours <= 0).
func LoadFile(path string, lastHours int, now time.Time) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("log file not found: %w", err)
	}
	defer f.Close()

	var since time.Time
	if lastHours > 0 {
		since = now.UTC().Add(-time.Duration(lastHours) * time.Hour)
	}
	return Load(f, since)
}
