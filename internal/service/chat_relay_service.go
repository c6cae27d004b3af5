package service

import (
	"context"
	"errors"
	"time"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/pkg/metrics"
	"maverik-copilot-be/internal/repository/specification"
	"maverik-copilot-be/internal/repository/unitofwork"
	"maverik-copilot-be/pkg/events"
	"maverik-copilot-be/pkg/rag"
)

type TurnState string

const (
	TurnDelivered         TurnState = "delivered"
	TurnFallbackDelivered TurnState = "fallback_delivered"
	TurnRejected          TurnState = "rejected"
)

type RejectReason string

const (
	RejectNotFound         RejectReason = "not_found"
	RejectMalformedSession RejectReason = "malformed_session"
	RejectRagUnavailable   RejectReason = "rag_unavailable"
)

const ragServiceName = "rag_service"

// RelayResult is the outcome of one chat turn. Detail is set unless the turn was rejected.
type RelayResult struct {
	State  TurnState
	Reason RejectReason
	Detail *entity.SessionDetail
}

func rejected(reason RejectReason) *RelayResult {
	metrics.RecordTurn(string(TurnRejected))
	return &RelayResult{State: TurnRejected, Reason: reason}
}

type IChatRelayService interface {
	SendTurn(ctx context.Context, userID, sessionID int64, input *string) (*RelayResult, error)
}

type chatRelayService struct {
	uowFactory unitofwork.RepositoryFactory
	rag        rag.IClient
	emitter    IEventEmitter
	log        logger.ILogger
}

func NewChatRelayService(uowFactory unitofwork.RepositoryFactory, ragClient rag.IClient, emitter IEventEmitter, log logger.ILogger) IChatRelayService {
	return &chatRelayService{
		uowFactory: uowFactory,
		rag:        ragClient,
		emitter:    emitter,
		log:        log,
	}
}

// SendTurn relays one user turn to the RAG service and persists the answer.
// Only a timeout produces the canned answer; every other RAG failure persists nothing.
// The returned error is reserved for storage failures.
func (s *chatRelayService) SendTurn(ctx context.Context, userID, sessionID int64, input *string) (*RelayResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.AdvisorySessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionID},
		specification.WithSessionGraph(),
	)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserId != userID {
		s.log.Warn(logger.Business, "Advisory session not found", map[string]interface{}{
			"session_id": sessionID,
			"user_id":    userID,
		})
		return rejected(RejectNotFound), nil
	}
	if session.User == nil {
		s.log.Error(logger.Errors, "Advisory session has no owner", map[string]interface{}{
			"session_id": sessionID,
			"error_type": "MalformedSession",
		})
		return rejected(RejectMalformedSession), nil
	}

	profile, err := PrepareUserProfile(session.User)
	if err != nil {
		s.log.Error(logger.Errors, "Cannot build user profile", map[string]interface{}{
			"session_id": sessionID,
			"user_id":    userID,
			"error":      err,
		})
		return rejected(RejectMalformedSession), nil
	}

	req := rag.ChatRequest{UserProfile: profile, ChatHistory: [][2]string{}}
	if input != nil && *input != "" {
		req.Input = *input
		details, err := uow.SessionDetailRepository().FindAll(ctx,
			specification.BySessionID{SessionID: sessionID},
			specification.OrderBy{Field: "id"},
		)
		if err != nil {
			return nil, err
		}
		for _, d := range details {
			req.ChatHistory = append(req.ChatHistory, [2]string{d.UserText, d.SystemText})
		}
	} else {
		req.Input = PrepareFirstTurnPrompt(session)
	}

	answer, state := s.callRag(ctx, userID, sessionID, req)
	if state == TurnRejected {
		return rejected(RejectRagUnavailable), nil
	}

	detail := &entity.SessionDetail{
		SessionId:  sessionID,
		UserText:   req.Input,
		SystemText: answer,
	}
	if err := uow.SessionDetailRepository().Create(ctx, detail); err != nil {
		return nil, err
	}

	metrics.RecordTurn(string(state))
	s.emitter.Emit(ctx, events.NewTurnPersisted(userID, sessionID, detail.Id, state == TurnFallbackDelivered))

	return &RelayResult{State: state, Detail: detail}, nil
}

func (s *chatRelayService) callRag(ctx context.Context, userID, sessionID int64, req rag.ChatRequest) (string, TurnState) {
	start := time.Now()
	answer, err := s.rag.Chat(ctx, req)
	elapsed := time.Since(start)

	details := map[string]interface{}{
		"external_service": ragServiceName,
		"endpoint":         rag.ChatPath,
		"duration_ms":      elapsed.Milliseconds(),
		"session_id":       sessionID,
		"user_id":          userID,
		"history_turns":    len(req.ChatHistory),
	}

	switch {
	case err == nil:
		metrics.RecordRagCall(metrics.RagSuccess, elapsed)
		details["outcome"] = metrics.RagSuccess
		details["response_length"] = len(answer)
		s.log.Info(logger.Rag, "RAG service call succeeded", details)
		return answer, TurnDelivered

	case rag.IsTimeout(err):
		metrics.RecordRagCall(metrics.RagTimeout, elapsed)
		details["outcome"] = metrics.RagTimeout
		details["error"] = err
		details["error_type"] = "Timeout"
		details["timeout_ms"] = s.rag.Timeout().Milliseconds()
		s.log.Error(logger.Rag, "RAG service call timed out, using fallback answer", details)
		return FallbackAnswer, TurnFallbackDelivered

	default:
		metrics.RecordRagCall(metrics.RagError, elapsed)
		details["outcome"] = metrics.RagError
		details["error"] = err
		details["error_type"] = ragErrorType(err)
		s.log.Error(logger.Rag, "RAG service call failed", details)
		return "", TurnRejected
	}
}

func ragErrorType(err error) string {
	switch {
	case errors.Is(err, rag.ErrUnavailable):
		return "ConnectionError"
	case errors.Is(err, rag.ErrBadStatus):
		return "HTTPError"
	case errors.Is(err, rag.ErrMalformedResponse):
		return "JSONDecodeError"
	case errors.Is(err, rag.ErrEmptyResponse):
		return "MissingResponse"
	default:
		return "RequestException"
	}
}
