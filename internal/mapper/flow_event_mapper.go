package mapper

import (
	"github.com/abhi-r/verdant/internal/entity"
	"github.com/abhi-r/verdant/internal/model"
)

type FlowEventMapper struct{}

func NewFlowEventMapper() *FlowEventMapper {
	return &FlowEventMapper{}
}

func (m *FlowEventMapper) ToEntity(e *model.FlowEvent) *entity.FlowEvent {
	if e == nil {
		return nil
	}

	return &entity.FlowEvent{
		Id:          e.Id,
		SessionId:   e.SessionId,
		Category:    e.Category,
		EventType:   entity.FlowEventType(e.EventType),
		Filters:     e.Filters,
		AnswerCount: e.AnswerCount,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *FlowEventMapper) ToModel(e *entity.FlowEvent) *model.FlowEvent {
	if e == nil {
		return nil
	}

	return &model.FlowEvent{
		Id:          e.Id,
		SessionId:   e.SessionId,
		Category:    e.Category,
		EventType:   string(e.EventType),
		Filters:     e.Filters,
		AnswerCount: e.AnswerCount,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *FlowEventMapper) ToEntities(events []*model.FlowEvent) []*entity.FlowEvent {
	entities := make([]*entity.FlowEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
