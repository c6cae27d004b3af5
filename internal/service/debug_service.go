package service

import (
	"context"
	"time"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/pkg/metrics"
	"maverik-copilot-be/internal/repository/specification"
	"maverik-copilot-be/internal/repository/unitofwork"
	"maverik-copilot-be/pkg/rag"
)

const latencyProbeInput = "Hola"

type IDebugService interface {
	InspectSession(ctx context.Context, userID, sessionID int64) (*dto.SessionInspection, error)
	PingRag(ctx context.Context) *dto.RagPingResponse
	MeasureRagLatency(ctx context.Context) *dto.RagLatencyResponse
}

type debugService struct {
	uowFactory unitofwork.RepositoryFactory
	advisory   IAdvisoryService
	rag        rag.IClient
	log        logger.ILogger
}

func NewDebugService(uowFactory unitofwork.RepositoryFactory, advisory IAdvisoryService, ragClient rag.IClient, log logger.ILogger) IDebugService {
	return &debugService{
		uowFactory: uowFactory,
		advisory:   advisory,
		rag:        ragClient,
		log:        log,
	}
}

// InspectSession shows what the relay would send for a session without calling the RAG service.
func (s *debugService) InspectSession(ctx context.Context, userID, sessionID int64) (*dto.SessionInspection, error) {
	session, err := s.advisory.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	turns, err := s.uowFactory.NewUnitOfWork(ctx).SessionDetailRepository().Count(ctx,
		specification.BySessionID{SessionID: sessionID},
	)
	if err != nil {
		return nil, err
	}

	out := &dto.SessionInspection{
		Session:     *ToSessionResponse(session, session.CreatedAt),
		FirstInput:  PrepareFirstTurnPrompt(session),
		RiskProfile: RiskProfile(session),
		TurnCount:   turns,
	}
	if session.User == nil {
		out.ProfileErr = ErrIncompleteProfile.Error()
		return out, nil
	}
	if profile, err := PrepareUserProfile(session.User); err != nil {
		out.ProfileErr = err.Error()
	} else {
		out.UserProfile = profile
	}
	return out, nil
}

func (s *debugService) PingRag(ctx context.Context) *dto.RagPingResponse {
	res, err := s.rag.Ping(ctx)
	out := &dto.RagPingResponse{
		URL:        s.rag.BaseURL(),
		Reachable:  res.Reachable,
		StatusCode: res.StatusCode,
		DurationMs: res.Duration.Milliseconds(),
	}
	if err != nil {
		out.Error = err.Error()
		s.log.Warn(logger.Rag, "RAG service ping failed", map[string]interface{}{
			"external_service": ragServiceName,
			"endpoint":         "/",
			"duration_ms":      out.DurationMs,
			"error":            err.Error(),
		})
	}
	return out
}

func (s *debugService) MeasureRagLatency(ctx context.Context) *dto.RagLatencyResponse {
	start := time.Now()
	_, err := s.rag.Chat(ctx, rag.ChatRequest{UserProfile: "", Input: latencyProbeInput})
	elapsed := time.Since(start)

	out := &dto.RagLatencyResponse{
		Endpoint:   rag.ChatPath,
		Outcome:    metrics.RagSuccess,
		DurationMs: elapsed.Milliseconds(),
		TimeoutMs:  s.rag.Timeout().Milliseconds(),
	}
	switch {
	case err == nil:
	case rag.IsTimeout(err):
		out.Outcome = metrics.RagTimeout
		out.Error = err.Error()
	default:
		out.Outcome = metrics.RagError
		out.Error = err.Error()
	}

	s.log.Info(logger.Rag, "RAG latency probe", map[string]interface{}{
		"external_service": ragServiceName,
		"endpoint":         rag.ChatPath,
		"duration_ms":      out.DurationMs,
		"outcome":          out.Outcome,
	})
	return out
}
