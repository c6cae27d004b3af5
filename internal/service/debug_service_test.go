package service

import (
	"context"
	"fmt"
	"testing"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/pkg/rag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectSession(t *testing.T) {
	f := newFixture()
	user := f.createUser(t, "ana@example.com")
	advisory := newAdvisory(f)
	sess, err := advisory.CreateSession(context.Background(), user.Id, &dto.CreateSessionRequest{
		PurposeId:       2,
		ObjectiveId:     int16Ptr(1),
		RiskToleranceId: int16Ptr(1),
	})
	require.NoError(t, err)

	svc := NewDebugService(f.uow, advisory, &stubRag{}, logger.NewNop())
	out, err := svc.InspectSession(context.Background(), user.Id, sess.Id)
	require.NoError(t, err)

	assert.Equal(t, RiskConservative, out.RiskProfile)
	assert.Equal(t, sess.FirstInput, out.FirstInput)
	assert.Contains(t, out.UserProfile, "Mi nivel educativo es primaria.")
	assert.Zero(t, out.TurnCount)
	assert.Empty(t, out.ProfileErr)

	_, err = svc.InspectSession(context.Background(), user.Id+1, sess.Id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPingRag(t *testing.T) {
	svc := NewDebugService(nil, nil, &stubRag{}, logger.NewNop())
	out := svc.PingRag(context.Background())
	assert.True(t, out.Reachable)
	assert.Equal(t, "http://rag.test", out.URL)

	svc = NewDebugService(nil, nil, &stubRag{err: rag.ErrUnavailable}, logger.NewNop())
	out = svc.PingRag(context.Background())
	assert.False(t, out.Reachable)
	assert.NotEmpty(t, out.Error)
}

func TestMeasureRagLatency(t *testing.T) {
	svc := NewDebugService(nil, nil, &stubRag{answer: "ok"}, logger.NewNop())
	assert.Equal(t, "success", svc.MeasureRagLatency(context.Background()).Outcome)

	svc = NewDebugService(nil, nil, &stubRag{err: fmt.Errorf("%w: slow", rag.ErrTimeout)}, logger.NewNop())
	out := svc.MeasureRagLatency(context.Background())
	assert.Equal(t, "timeout", out.Outcome)
	assert.NotEmpty(t, out.Error)
}
