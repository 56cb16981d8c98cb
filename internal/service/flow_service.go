package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhi-r/verdant/internal/constant"
	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/entity"
	"github.com/abhi-r/verdant/internal/pkg/logger"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"
	"github.com/abhi-r/verdant/internal/repository/contract"
	"github.com/abhi-r/verdant/pkg/events"
	"github.com/abhi-r/verdant/pkg/flow"
	pktNats "github.com/abhi-r/verdant/pkg/nats"

	"github.com/gofiber/fiber/v2"
)

// NoticeSender pushes transient messages to a session's websocket
// connections. Satisfied by the websocket hub.
type NoticeSender interface {
	Send(sessionID string, notice dto.Notice)
}

type IFlowService interface {
	Start(ctx context.Context) (*dto.FlowStateResponse, error)
	Show(ctx context.Context, sessionId string) (*dto.FlowStateResponse, error)
	Select(ctx context.Context, sessionId string, req *dto.SelectOptionRequest) (*dto.FlowStateResponse, error)
	Advance(ctx context.Context, sessionId string) (*dto.AdvanceResponse, error)
	Retreat(ctx context.Context, sessionId string) (*dto.FlowStateResponse, error)
	Abandon(ctx context.Context, sessionId string) error
}

type flowService struct {
	engine           *flow.Engine
	sessions         contract.FlowSessionRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	notices          NoticeSender
	logger           logger.ILogger
	sessionTTL       time.Duration
}

func NewFlowService(
	engine *flow.Engine,
	sessions contract.FlowSessionRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	notices NoticeSender,
	log logger.ILogger,
	sessionTTL time.Duration,
) IFlowService {
	return &flowService{
		engine:           engine,
		sessions:         sessions,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		notices:          notices,
		logger:           log,
		sessionTTL:       sessionTTL,
	}
}

func (s *flowService) Start(ctx context.Context) (*dto.FlowStateResponse, error) {
	session := flow.NewSession()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info(constant.ModuleFlow, "Session started", map[string]interface{}{"session_id": session.ID})
	return s.state(session)
}

func (s *flowService) Show(ctx context.Context, sessionId string) (*dto.FlowStateResponse, error) {
	session, err := s.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return s.state(session)
}

func (s *flowService) Select(ctx context.Context, sessionId string, req *dto.SelectOptionRequest) (*dto.FlowStateResponse, error) {
	session, err := s.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	if err := s.engine.SelectOption(session, req.Value); err != nil {
		var limitErr *flow.SelectionLimitError
		if errors.As(err, &limitErr) {
			s.notices.Send(session.ID, dto.Notice{
				Kind:    constant.NoticeSelectionLimit,
				Message: limitErr.Error(),
			})
			return nil, serverutils.NewHttpError(fiber.StatusUnprocessableEntity, limitErr.Error())
		}
		var optErr *flow.UnknownOptionError
		if errors.As(err, &optErr) {
			return nil, serverutils.NewHttpError(fiber.StatusUnprocessableEntity, optErr.Error())
		}
		return nil, err
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return s.state(session)
}

func (s *flowService) Advance(ctx context.Context, sessionId string) (*dto.AdvanceResponse, error) {
	session, err := s.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	done, err := s.engine.Advance(session)
	if err != nil {
		if errors.Is(err, flow.ErrEmptySelection) {
			return nil, serverutils.NewHttpError(fiber.StatusUnprocessableEntity, "select at least one option before continuing")
		}
		var nodeErr *flow.UnknownNodeError
		if errors.As(err, &nodeErr) {
			// A dangling transition is a tree bug, not a client mistake.
			s.logger.Error(constant.ModuleFlow, "Transition to unknown question", map[string]interface{}{
				"session_id": session.ID,
				"node_id":    string(nodeErr.ID),
			})
			return nil, serverutils.NewHttpError(fiber.StatusInternalServerError, "flow configuration error")
		}
		return nil, err
	}

	if !done {
		if err := s.save(ctx, session); err != nil {
			return nil, err
		}
		state, err := s.state(session)
		if err != nil {
			return nil, err
		}
		return &dto.AdvanceResponse{Completed: false, State: state}, nil
	}

	return s.complete(ctx, session)
}

func (s *flowService) Retreat(ctx context.Context, sessionId string) (*dto.FlowStateResponse, error) {
	session, err := s.load(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Retreat(session); err != nil {
		if errors.Is(err, flow.ErrNoHistory) {
			// Already at the first question; return the state unchanged.
			return s.state(session)
		}
		return nil, err
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return s.state(session)
}

func (s *flowService) Abandon(ctx context.Context, sessionId string) error {
	session, err := s.load(ctx, sessionId)
	if err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}

	s.publishMessage(ctx, &dto.FlowEventMessage{
		SessionId:   session.ID,
		Category:    string(session.Category),
		EventType:   string(entity.FlowEventAbandoned),
		AnswerCount: len(session.Answers),
		OccurredAt:  time.Now(),
	})

	if s.eventPublisher != nil {
		evt := events.NewFlowAbandoned(session.ID, string(session.Category), len(session.Answers))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn(constant.ModuleFlow, "Failed to publish abandon event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info(constant.ModuleFlow, "Session abandoned", map[string]interface{}{"session_id": session.ID})
	return nil
}

// complete projects the finished session into catalog filters, emits the
// completion events and discards the session.
func (s *flowService) complete(ctx context.Context, session *flow.Session) (*dto.AdvanceResponse, error) {
	projection := s.engine.Project(session)

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return nil, err
	}

	encoded := projection.Encode()
	s.publishMessage(ctx, &dto.FlowEventMessage{
		SessionId:   session.ID,
		Category:    string(session.Category),
		EventType:   string(entity.FlowEventCompleted),
		Filters:     encoded,
		AnswerCount: len(session.Answers),
		OccurredAt:  time.Now(),
	})

	if s.eventPublisher != nil {
		evt := events.NewFlowCompleted(session.ID, string(session.Category), encoded, len(session.Answers))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn(constant.ModuleFlow, "Failed to publish completion event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.notices.Send(session.ID, dto.Notice{
		Kind:    constant.NoticeGuidedFiltersApplied,
		Message: "We've picked filters based on your answers",
	})

	s.logger.Info(constant.ModuleFlow, "Session completed", map[string]interface{}{
		"session_id": session.ID,
		"category":   string(session.Category),
	})

	return &dto.AdvanceResponse{
		Completed:   true,
		Category:    string(session.Category),
		RedirectURL: projection.RedirectURL(),
		Filters:     projection.Filters,
	}, nil
}

func (s *flowService) publishMessage(ctx context.Context, msg *dto.FlowEventMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error(constant.ModuleFlow, "Failed to marshal flow event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Error(constant.ModuleFlow, "Failed to publish flow event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *flowService) load(ctx context.Context, sessionId string) (*flow.Session, error) {
	session, err := s.sessions.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewHttpError(fiber.StatusNotFound, "session not found")
	}
	if session.StaleAfter(s.sessionTTL) {
		// The backing store may outlive the staleness window (memory
		// fallback purges lazily), so enforce it here too.
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, serverutils.NewHttpError(fiber.StatusNotFound, "session expired")
	}
	return session, nil
}

func (s *flowService) save(ctx context.Context, session *flow.Session) error {
	session.Touch()
	return s.sessions.Save(ctx, session)
}

func (s *flowService) state(session *flow.Session) (*dto.FlowStateResponse, error) {
	node, err := s.engine.Current(session)
	if err != nil {
		return nil, fmt.Errorf("resolve current question: %w", err)
	}
	step, total := s.engine.Progress(session)
	return dto.NewFlowStateResponse(session, node, step, total, s.engine.NextIsTerminal(session)), nil
}
