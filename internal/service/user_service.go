package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/pkg/token"
	"maverik-copilot-be/internal/repository/specification"
	"maverik-copilot-be/internal/repository/unitofwork"
	"maverik-copilot-be/pkg/events"

	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrWrongCredentials       = errors.New("wrong credentials")
)

const passwordBytes = 20

type IUserService interface {
	CreateUser(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, error)
	VerifyLogin(ctx context.Context, email, password string) (*entity.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    ICatalogService
	publisher  IPublisherService
	emitter    IEventEmitter
	issuer     *token.Issuer
	log        logger.ILogger
	isProd     bool
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	catalog ICatalogService,
	publisher IPublisherService,
	emitter IEventEmitter,
	issuer *token.Issuer,
	log logger.ILogger,
	isProd bool,
) IUserService {
	return &userService{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
		emitter:    emitter,
		issuer:     issuer,
		log:        log,
		isProd:     isProd,
	}
}

// GeneratePassword returns 20 random bytes, base64url encoded without padding.
func GeneratePassword() (string, error) {
	b := make([]byte, passwordBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func orDefault(id int16) int16 {
	if id == 0 {
		return entity.DefaultLookupId
	}
	return id
}

func (s *userService) CreateUser(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, error) {
	user := &entity.User{
		Email:                    req.Email,
		EducationLevelId:         orDefault(req.EducationLevelId),
		AltInvestmentKnowledgeId: orDefault(req.AltInvestmentKnowledgeId),
		InvestingExperienceId:    orDefault(req.InvestingExperienceId),
		MonthlySavingsShareId:    orDefault(req.MonthlySavingsShareId),
		SavingsToInvestShareId:   orDefault(req.SavingsToInvestShareId),
		HoldingPeriodId:          orDefault(req.HoldingPeriodId),
		InvestmentGoalId:         orDefault(req.InvestmentGoalId),
		DrawdownReactionId:       orDefault(req.DrawdownReactionId),
	}
	if req.BirthDate != nil && !req.BirthDate.IsZero() {
		bd := req.BirthDate.Time
		user.BirthDate = &bd
	}

	if err := s.catalog.ValidateRefs(ctx, surveyRefs(user)...); err != nil {
		return nil, err
	}

	password, err := GeneratePassword()
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}
	user.Password = password

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	existing, err := repo.Count(ctx, specification.ByEmail{Email: user.Email})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrEmailAlreadyRegistered
	}

	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	if !s.isProd {
		s.log.Debug(logger.Auth, "Generated password for new user", map[string]interface{}{
			"user_id":  user.Id,
			"password": password,
		})
	}

	s.emitter.Emit(ctx, events.NewUserCreated(user.Id, user.Email))
	s.queueWelcomeEmail(ctx, user)

	return ToUserResponse(user), nil
}

func (s *userService) queueWelcomeEmail(ctx context.Context, user *entity.User) {
	payload, err := json.Marshal(dto.WelcomeEmailMessage{Email: user.Email, Password: user.Password})
	if err == nil {
		err = s.publisher.Publish(ctx, payload)
	}
	if err != nil {
		s.log.Error(logger.Errors, "Failed to queue welcome email", map[string]interface{}{
			"error":   err,
			"user_id": user.Id,
			"context": "email",
		})
	}
}

func (s *userService) VerifyLogin(ctx context.Context, email, password string) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByCredentials{Email: email, Password: password})
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.VerifyLogin(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Warn(logger.Auth, "Login failed", map[string]interface{}{
			"event_type": events.AuthLogin,
			"success":    false,
		})
		s.emitter.Emit(ctx, events.NewAuthLogin(0, false))
		return nil, ErrWrongCredentials
	}

	accessToken, err := s.issuer.Sign(user.Id, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info(logger.Auth, "Login succeeded", map[string]interface{}{
		"event_type": events.AuthLogin,
		"user_id":    user.Id,
		"success":    true,
	})
	s.emitter.Emit(ctx, events.NewAuthLogin(user.Id, true))

	return &dto.LoginResponse{AccessToken: accessToken}, nil
}

func surveyRefs(u *entity.User) []LookupRef {
	return []LookupRef{
		{entity.CatalogEducationLevel, u.EducationLevelId},
		{entity.CatalogAltInvestmentKnowledge, u.AltInvestmentKnowledgeId},
		{entity.CatalogInvestingExperience, u.InvestingExperienceId},
		{entity.CatalogMonthlySavingsShare, u.MonthlySavingsShareId},
		{entity.CatalogSavingsToInvestShare, u.SavingsToInvestShareId},
		{entity.CatalogHoldingPeriod, u.HoldingPeriodId},
		{entity.CatalogInvestmentGoal, u.InvestmentGoalId},
		{entity.CatalogDrawdownReaction, u.DrawdownReactionId},
	}
}

func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:                       u.Id,
		Email:                    u.Email,
		BirthDate:                dto.NewDate(u.BirthDate),
		EducationLevelId:         u.EducationLevelId,
		AltInvestmentKnowledgeId: u.AltInvestmentKnowledgeId,
		InvestingExperienceId:    u.InvestingExperienceId,
		MonthlySavingsShareId:    u.MonthlySavingsShareId,
		SavingsToInvestShareId:   u.SavingsToInvestShareId,
		HoldingPeriodId:          u.HoldingPeriodId,
		InvestmentGoalId:         u.InvestmentGoalId,
		DrawdownReactionId:       u.DrawdownReactionId,
		CreatedAt:                u.CreatedAt,
		UpdatedAt:                u.UpdatedAt,
	}
}
