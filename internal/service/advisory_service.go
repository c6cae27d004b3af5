package service

import (
	"context"
	"errors"
	"time"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/repository/specification"
	"maverik-copilot-be/internal/repository/unitofwork"
	"maverik-copilot-be/pkg/events"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrObjectiveRequired = errors.New("objetivo_id is required for goal assistance sessions")
)

type IAdvisoryService interface {
	CreateSession(ctx context.Context, userID int64, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	ListSessions(ctx context.Context, userID int64) ([]*dto.SessionResponse, error)
	GetSession(ctx context.Context, userID, sessionID int64) (*entity.AdvisorySession, error)
	ListSessionDetails(ctx context.Context, userID, sessionID int64) ([]*dto.TurnResponse, error)
}

type advisoryService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    ICatalogService
	emitter    IEventEmitter
	now        func() time.Time
}

func NewAdvisoryService(uowFactory unitofwork.RepositoryFactory, catalog ICatalogService, emitter IEventEmitter) IAdvisoryService {
	return &advisoryService{
		uowFactory: uowFactory,
		catalog:    catalog,
		emitter:    emitter,
		now:        time.Now,
	}
}

func (s *advisoryService) CreateSession(ctx context.Context, userID int64, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if req.PurposeId == entity.PurposeGoalAssistance && req.ObjectiveId == nil {
		return nil, ErrObjectiveRequired
	}

	refs := []LookupRef{{entity.CatalogSessionPurpose, req.PurposeId}}
	if req.ObjectiveId != nil {
		refs = append(refs, LookupRef{entity.CatalogObjective, *req.ObjectiveId})
	}
	if req.RiskToleranceId != nil {
		refs = append(refs, LookupRef{entity.CatalogRiskTolerance, *req.RiskToleranceId})
	}
	if err := s.catalog.ValidateRefs(ctx, refs...); err != nil {
		return nil, err
	}

	session := &entity.AdvisorySession{
		UserId:          userID,
		PurposeId:       req.PurposeId,
		ObjectiveId:     req.ObjectiveId,
		InitialCapital:  req.InitialCapital,
		HorizonMonths:   req.HorizonMonths,
		RiskToleranceId: req.RiskToleranceId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AdvisorySessionRepository()
	if err := repo.Create(ctx, session); err != nil {
		return nil, err
	}

	loaded, err := repo.FindOne(ctx, specification.ByID{ID: session.Id}, specification.WithSessionGraph())
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		return nil, ErrSessionNotFound
	}

	s.emitter.Emit(ctx, events.NewSessionCreated(userID, loaded.Id, loaded.PurposeId))

	return ToSessionResponse(loaded, s.now()), nil
}

func (s *advisoryService) ListSessions(ctx context.Context, userID int64) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.AdvisorySessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.WithSessionGraph(),
		specification.OrderBy{Field: "id", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, ToSessionResponse(sess, sess.CreatedAt))
	}
	return out, nil
}

// GetSession loads a session with its full graph. Sessions of other users are not found.
func (s *advisoryService) GetSession(ctx context.Context, userID, sessionID int64) (*entity.AdvisorySession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.AdvisorySessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionID},
		specification.UserOwnedBy{UserID: userID},
		specification.WithSessionGraph(),
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *advisoryService) ListSessionDetails(ctx context.Context, userID, sessionID int64) ([]*dto.TurnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.AdvisorySessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionID},
		specification.UserOwnedBy{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	details, err := uow.SessionDetailRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionID},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TurnResponse, 0, len(details))
	for _, d := range details {
		out = append(out, ToTurnResponse(d))
	}
	return out, nil
}

func ToSessionResponse(s *entity.AdvisorySession, titledAt time.Time) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		Id:              s.Id,
		UserId:          s.UserId,
		PurposeId:       s.PurposeId,
		ObjectiveId:     s.ObjectiveId,
		HorizonMonths:   s.HorizonMonths,
		RiskToleranceId: s.RiskToleranceId,
		CreatedAt:       s.CreatedAt,
		ChatTitle:       GenerateChatTitle(s, titledAt),
		FirstInput:      PrepareFirstTurnPrompt(s),
	}
	if s.InitialCapital != nil {
		f := s.InitialCapital.InexactFloat64()
		resp.InitialCapital = &f
	}
	return resp
}

func ToTurnResponse(d *entity.SessionDetail) *dto.TurnResponse {
	return &dto.TurnResponse{
		Id:        d.Id,
		SessionId: d.SessionId,
		Input:     d.UserText,
		Output:    d.SystemText,
	}
}
