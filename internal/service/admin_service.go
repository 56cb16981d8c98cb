package service

import (
	"context"
	"os"
	"time"

	"github.com/abhi-r/verdant/internal/config"
	"github.com/abhi-r/verdant/internal/constant"
	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/entity"
	"github.com/abhi-r/verdant/internal/pkg/logger"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"
	"github.com/abhi-r/verdant/internal/repository/specification"
	"github.com/abhi-r/verdant/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
	GetLogById(id string) (*logger.LogEntry, error)
	FlowStats(ctx context.Context) (*dto.FlowStatsResponse, error)
	RecentFlowEvents(ctx context.Context, limit, offset int) ([]dto.FlowEventResponse, error)
}

type adminService struct {
	cfg        config.AdminConfig
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(
	cfg config.AdminConfig,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		cfg:        cfg,
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Login checks the credentials against the single configured admin
// account. There is no user table behind the admin surface.
func (s *adminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if s.cfg.Email == "" || s.cfg.PasswordHash == "" {
		return nil, serverutils.NewHttpError(fiber.StatusForbidden, "admin access is not configured")
	}
	if req.Email != s.cfg.Email {
		return nil, serverutils.NewHttpError(fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewHttpError(fiber.StatusUnauthorized, "invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id": constant.AdminUserId,
		"role":    constant.AdminRole,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	s.logger.Info(constant.ModuleAdmin, "Admin logged in", map[string]interface{}{"email": req.Email})
	return &dto.AdminLoginResponse{Token: signedToken}, nil
}

func (s *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.logger.GetLogs(level, limit, offset)
}

func (s *adminService) GetLogById(id string) (*logger.LogEntry, error) {
	return s.logger.GetLogById(id)
}

func (s *adminService) FlowStats(ctx context.Context) (*dto.FlowStatsResponse, error) {
	if s.uowFactory == nil {
		return nil, serverutils.NewHttpError(fiber.StatusServiceUnavailable, "stats require a database")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FlowEventRepository()

	completed, err := repo.Count(ctx, specification.ByEventType{EventType: string(entity.FlowEventCompleted)})
	if err != nil {
		return nil, err
	}
	abandoned, err := repo.Count(ctx, specification.ByEventType{EventType: string(entity.FlowEventAbandoned)})
	if err != nil {
		return nil, err
	}
	medical, err := repo.Count(ctx, specification.ByEventCategory{Category: CategoryMedical})
	if err != nil {
		return nil, err
	}
	recreational, err := repo.Count(ctx, specification.ByEventCategory{Category: CategoryRecreational})
	if err != nil {
		return nil, err
	}
	recent, err := repo.Count(ctx, specification.OccurredAfter{Since: time.Now().Add(-24 * time.Hour)})
	if err != nil {
		return nil, err
	}

	return &dto.FlowStatsResponse{
		Completed:   completed,
		Abandoned:   abandoned,
		Medical:     medical,
		Recreation:  recreational,
		Last24Hours: recent,
	}, nil
}

// RecentFlowEvents lists stored flow events, newest first.
func (s *adminService) RecentFlowEvents(ctx context.Context, limit, offset int) ([]dto.FlowEventResponse, error) {
	if s.uowFactory == nil {
		return nil, serverutils.NewHttpError(fiber.StatusServiceUnavailable, "stats require a database")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.FlowEventRepository().FindAll(ctx,
		specification.OrderBy{Field: "occurred_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewFlowEventResponses(events), nil
}
