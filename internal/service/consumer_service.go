package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/entity"
	"github.com/abhi-r/verdant/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the flow events topic and persists each event
// for the admin stats view. Persistence is best effort when the
// database is down: invalid payloads are acked, storage failures
// nacked for retry.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.FlowEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal flow event: %v", err)
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	if cs.uowFactory == nil {
		// Running without a database; nothing to persist.
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	event := &entity.FlowEvent{
		Id:          uuid.New(),
		SessionId:   payload.SessionId,
		Category:    payload.Category,
		EventType:   entity.FlowEventType(payload.EventType),
		Filters:     payload.Filters,
		AnswerCount: payload.AnswerCount,
		OccurredAt:  payload.OccurredAt,
	}

	if err := uow.FlowEventRepository().Create(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to store flow event for session %s: %v", payload.SessionId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
