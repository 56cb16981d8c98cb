package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/pkg/logger"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"
	"github.com/abhi-r/verdant/internal/repository/memory"
	"github.com/abhi-r/verdant/pkg/flow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	payloads [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakeNotices struct {
	sent []dto.Notice
}

func (f *fakeNotices) Send(sessionID string, notice dto.Notice) {
	f.sent = append(f.sent, notice)
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

func newTestFlowService(t *testing.T) (IFlowService, *fakePublisher, *fakeNotices) {
	t.Helper()
	engine, err := flow.NewEngine(flow.DefaultTree())
	require.NoError(t, err)

	publisher := &fakePublisher{}
	notices := &fakeNotices{}
	svc := NewFlowService(
		engine,
		memory.NewFlowSessionRepository(24*time.Hour),
		publisher,
		nil,
		notices,
		nopLogger{},
		24*time.Hour,
	)
	return svc, publisher, notices
}

func selectAndAdvance(t *testing.T, svc IFlowService, sessionId string, values ...string) *dto.AdvanceResponse {
	t.Helper()
	ctx := context.Background()
	for _, v := range values {
		_, err := svc.Select(ctx, sessionId, &dto.SelectOptionRequest{Value: v})
		require.NoError(t, err)
	}
	res, err := svc.Advance(ctx, sessionId)
	require.NoError(t, err)
	return res
}

func TestFlowServiceFullMedicalWalk(t *testing.T) {
	svc, publisher, notices := newTestFlowService(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, "q1_primary_intent", state.Question.Id)
	assert.False(t, state.CanRetreat)
	assert.Equal(t, 1, state.Progress.Step)

	res := selectAndAdvance(t, svc, state.SessionId, "medical")
	assert.False(t, res.Completed)
	assert.Equal(t, "q2_medical_conditions", res.State.Question.Id)
	assert.Equal(t, "medical", res.State.Category)

	selectAndAdvance(t, svc, state.SessionId, "anxiety", "insomnia")
	selectAndAdvance(t, svc, state.SessionId, "anti-anxiety", "sedation")
	selectAndAdvance(t, svc, state.SessionId, "any")

	res = selectAndAdvance(t, svc, state.SessionId, "low")
	require.True(t, res.Completed)
	assert.Equal(t, "medical", res.Category)
	assert.Equal(t, "anxiety,insomnia", res.Filters["conditions"])
	assert.Equal(t, "anti-anxiety,sedation", res.Filters["effects"])
	assert.Equal(t, "low", res.Filters["cbdRange"])
	_, hasFormat := res.Filters["format"]
	assert.False(t, hasFormat)
	assert.Contains(t, res.RedirectURL, "/medical?")
	assert.Contains(t, res.RedirectURL, "guided=1")

	// Completion published one event and pushed the confirmation notice.
	require.Len(t, publisher.payloads, 1)
	var msg dto.FlowEventMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, state.SessionId, msg.SessionId)
	assert.Equal(t, "COMPLETED", msg.EventType)
	assert.Equal(t, 5, msg.AnswerCount)

	require.Len(t, notices.sent, 1)
	assert.Equal(t, "guided_filters_applied", notices.sent[0].Kind)

	// The session is gone once completed.
	_, err = svc.Show(ctx, state.SessionId)
	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestFlowServiceSelectionLimitNotice(t *testing.T) {
	svc, _, notices := newTestFlowService(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)
	selectAndAdvance(t, svc, state.SessionId, "recreational")
	selectAndAdvance(t, svc, state.SessionId, "euphoria")

	// Mood allows at most three picks; the fourth is rejected and
	// notifies the session, once per attempt.
	for _, v := range []string{"happy", "relaxed", "uplifted"} {
		_, err := svc.Select(ctx, state.SessionId, &dto.SelectOptionRequest{Value: v})
		require.NoError(t, err)
	}
	_, err = svc.Select(ctx, state.SessionId, &dto.SelectOptionRequest{Value: "sleepy"})
	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Code)
	require.Len(t, notices.sent, 1)
	assert.Equal(t, "selection_limit", notices.sent[0].Kind)

	_, err = svc.Select(ctx, state.SessionId, &dto.SelectOptionRequest{Value: "giggly"})
	require.Error(t, err)
	assert.Len(t, notices.sent, 2)

	// Deselecting frees a slot again.
	_, err = svc.Select(ctx, state.SessionId, &dto.SelectOptionRequest{Value: "happy"})
	require.NoError(t, err)
	res, err := svc.Select(ctx, state.SessionId, &dto.SelectOptionRequest{Value: "sleepy"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"relaxed", "uplifted", "sleepy"}, res.Selection)
}

func TestFlowServiceAdvanceWithoutSelection(t *testing.T) {
	svc, _, _ := newTestFlowService(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, state.SessionId)
	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Code)

	// Nothing was persisted by the failed advance.
	after, err := svc.Show(ctx, state.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "q1_primary_intent", after.Question.Id)
	assert.Empty(t, after.Answers)
}

func TestFlowServiceRetreatRestoresAnswer(t *testing.T) {
	svc, _, _ := newTestFlowService(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)
	selectAndAdvance(t, svc, state.SessionId, "recreational")
	selectAndAdvance(t, svc, state.SessionId, "energy", "focus")

	res, err := svc.Retreat(ctx, state.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "q2_recreational_effects", res.Question.Id)
	assert.ElementsMatch(t, []string{"energy", "focus"}, res.Selection)
	assert.True(t, res.CanRetreat)
}

func TestFlowServiceRetreatAtRootIsNoop(t *testing.T) {
	svc, _, _ := newTestFlowService(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)

	res, err := svc.Retreat(ctx, state.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "q1_primary_intent", res.Question.Id)
	assert.False(t, res.CanRetreat)
}

func TestFlowServiceAbandonPublishesAndDeletes(t *testing.T) {
	svc, publisher, _ := newTestFlowService(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)
	selectAndAdvance(t, svc, state.SessionId, "medical")

	require.NoError(t, svc.Abandon(ctx, state.SessionId))

	require.Len(t, publisher.payloads, 1)
	var msg dto.FlowEventMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, "ABANDONED", msg.EventType)
	assert.Equal(t, "medical", msg.Category)
	assert.Equal(t, 1, msg.AnswerCount)

	_, err = svc.Show(ctx, state.SessionId)
	require.Error(t, err)
}

func TestFlowServiceUnknownSession(t *testing.T) {
	svc, _, _ := newTestFlowService(t)

	_, err := svc.Show(context.Background(), "gf-nope")
	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}
