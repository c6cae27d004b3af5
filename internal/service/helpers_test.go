package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/repository/memory"
	"maverik-copilot-be/internal/repository/unitofwork"
	"maverik-copilot-be/pkg/events"
	"maverik-copilot-be/pkg/rag"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type stubRag struct {
	mu      sync.Mutex
	answer  string
	err     error
	calls   []rag.ChatRequest
	timeout time.Duration
}

func (s *stubRag) Chat(ctx context.Context, req rag.ChatRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	return s.answer, s.err
}

func (s *stubRag) Ping(ctx context.Context) (*rag.PingResult, error) {
	if s.err != nil {
		return &rag.PingResult{}, s.err
	}
	return &rag.PingResult{Reachable: true, StatusCode: 200}, nil
}

func (s *stubRag) BaseURL() string { return "http://rag.test" }

func (s *stubRag) Timeout() time.Duration { return s.timeout }

type recordingEmitter struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingEmitter) Emit(ctx context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingEmitter) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		out = append(out, e.EventType())
	}
	return out
}

type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return p.err
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Sync() error { return nil }

func (b *syncBuffer) records(t *testing.T) []map[string]interface{} {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func newCaptureLogger() (logger.ILogger, *syncBuffer) {
	buf := &syncBuffer{}
	return logger.NewWriterLogger(buf, zapcore.DebugLevel), buf
}

type fixture struct {
	store   *memory.Store
	uow     unitofwork.RepositoryFactory
	catalog ICatalogService
	emitter *recordingEmitter
}

func newFixture() *fixture {
	store := memory.NewStore()
	uow := memory.NewRepositoryFactory(store)
	return &fixture{
		store:   store,
		uow:     uow,
		catalog: NewCatalogService(uow, memory.NewLookupCache()),
		emitter: &recordingEmitter{},
	}
}

func int16Ptr(v int16) *int16 { return &v }

func strPtr(v string) *string { return &v }
