package dialog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return NewEngine(NewMemoryStore(), WithClock(func() time.Time { return fixed }))
}

func turn(t *testing.T, e *Engine, session, message string) Reply {
	t.Helper()
	reply, err := e.Turn(context.Background(), session, message)
	require.NoError(t, err)
	return reply
}

func TestGreeting(t *testing.T) {
	e := newTestEngine(t)
	reply := turn(t, e, "s1", "hello")
	assert.Contains(t, reply.Message, "Hello! I'm your AI Legal Assistant.")
	assert.Equal(t, greeting.suggestions, reply.Suggestions)
}

func TestArrestScript(t *testing.T) {
	e := newTestEngine(t)
	const session = "arrest-script"

	first := turn(t, e, session, "hello")
	assert.Contains(t, first.Message, "What legal situation would you like to discuss today?")

	second := turn(t, e, session, "I was arrested")
	assert.Contains(t, second.Message, "criminal law situation")
	assert.Contains(t, second.Message, "Can you tell me more about your situation?")
	assert.Contains(t, second.Message, "When were you arrested?")

	third := turn(t, e, session, "what are my rights")
	assert.Contains(t, third.Message, "When arrested, you have the right to:")
	assert.Contains(t, third.Message, "• Remain silent")
	assert.NotContains(t, third.Message, "could you tell me more about your legal issue",
		"must not fall through to the clarifying prompt once the issue is identified")
}

func TestFlowIntroSetsContext(t *testing.T) {
	e := newTestEngine(t)
	turn(t, e, "s2", "I was fired from my job")

	session, err := e.store.GetOrCreate(context.Background(), "s2")
	require.NoError(t, err)
	assert.Equal(t, FlowEmployment, session.Context.PrimaryIssue)
	assert.True(t, session.Context.IssueIdentified)
}

func TestFlowRepeatRoutesToFollowUp(t *testing.T) {
	e := newTestEngine(t)
	const session = "s3"
	turn(t, e, session, "I was fired")

	reply := turn(t, e, session, "can I get unemployment after being fired")
	assert.Contains(t, reply.Message, "To file for unemployment:")
}

func TestFlowFollowUpGenericFallback(t *testing.T) {
	e := newTestEngine(t)
	const session = "s4"
	turn(t, e, session, "my landlord sent me a notice")

	reply := turn(t, e, session, "the lease says something odd")
	assert.Contains(t, reply.Message, "Thank you for that information.")
	assert.Contains(t, reply.Message, "your housing situation")
}

func TestFlowSwitchUpdatesPrimaryIssue(t *testing.T) {
	e := newTestEngine(t)
	const session = "s5"
	turn(t, e, session, "I was arrested")
	turn(t, e, session, "also my landlord is threatening me")

	session5, err := e.store.GetOrCreate(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, FlowHousing, session5.Context.PrimaryIssue)
}

func TestRightsQuestionWithoutContextClarifies(t *testing.T) {
	e := newTestEngine(t)
	reply := turn(t, e, "fresh", "what are my rights")
	assert.Contains(t, reply.Message, "Your legal rights depend on your specific situation.")
}

func TestImmediateActionsQuestion(t *testing.T) {
	e := newTestEngine(t)
	const session = "s6"
	turn(t, e, session, "I was arrested")

	reply := turn(t, e, session, "what must i do now")
	assert.Contains(t, reply.Message, "If arrested:")
	assert.Contains(t, reply.Message, "1. Stay calm and don't resist")
}

func TestImmediateActionsEmploymentFallsToClarify(t *testing.T) {
	// The quick-actions table has no "employment" entry, so an employment
	// session asking for next steps gets the clarifying prompt.
	e := newTestEngine(t)
	const session = "s7"
	turn(t, e, session, "I was fired")

	reply := turn(t, e, session, "what must i do now")
	assert.Contains(t, reply.Message, "The immediate actions you should take depend on your specific legal situation.")
}

func TestStaticQuestionHandlers(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		message string
		want    string
	}{
		{"should i get a lawyer", "Finding the right lawyer is crucial."},
		{"is it expensive", "Legal costs vary widely depending on your situation:"},
		{"how long will it take", "Legal timing is critical and varies by situation:"},
	}
	for i, tc := range cases {
		reply := turn(t, e, "static-"+strings.Repeat("x", i+1), tc.message)
		assert.Contains(t, reply.Message, tc.want, "message %q", tc.message)
	}
}

func TestDefaultReply(t *testing.T) {
	e := newTestEngine(t)
	reply := turn(t, e, "s8", "qwerty asdf")
	assert.Contains(t, reply.Message, "could you tell me more specifically about your issue?")
	assert.Len(t, reply.Suggestions, 5)
}

func TestHistoryRecordsBothTurns(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	e := NewEngine(NewMemoryStore(), WithClock(func() time.Time { return fixed }))
	const session = "s9"
	reply := turn(t, e, session, "hello")

	history, err := e.History(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, "hello", history[0].Message)
	assert.Equal(t, RoleBot, history[1].Role)
	assert.Equal(t, reply.Message, history[1].Message)
	assert.Equal(t, fixed, history[0].Timestamp)
	assert.Equal(t, fixed, history[1].Timestamp)
}

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	e := newTestEngine(t)
	history, err := e.History(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestClearSessionEqualsFreshSession(t *testing.T) {
	e := newTestEngine(t)
	const cleared = "cleared"
	turn(t, e, cleared, "hello")
	turn(t, e, cleared, "I was arrested")
	require.NoError(t, e.ClearSession(context.Background(), cleared))

	afterClear := turn(t, e, cleared, "what are my rights")
	fresh := turn(t, e, "brand-new", "what are my rights")
	assert.Equal(t, fresh, afterClear, "a cleared session must behave like a new one")

	history, err := e.History(context.Background(), cleared)
	require.NoError(t, err)
	assert.Len(t, history, 2, "only the post-clear turn remains")
}

func TestClearUnknownSessionIsNoop(t *testing.T) {
	e := newTestEngine(t)
	assert.NoError(t, e.ClearSession(context.Background(), "ghost"))
}

func TestMemoryStoreDetachedCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s, err := store.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	s.History = append(s.History, Turn{Role: RoleUser, Message: "hi"})

	// Unsaved mutation must be invisible.
	again, err := store.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, again.History)

	require.NoError(t, store.Save(ctx, s))
	saved, err := store.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	require.Len(t, saved.History, 1)

	// Mutating the returned copy must not affect the stored session.
	saved.History[0].Message = "tampered"
	fresh, err := store.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "hi", fresh.History[0].Message)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := NewMemoryStore(WithTTL(time.Hour), WithStoreClock(clock))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{
		ID:      "a",
		Context: Context{PrimaryIssue: FlowArrest, IssueIdentified: true},
	}))

	now = now.Add(30 * time.Minute)
	s, err := store.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	assert.True(t, s.Context.IssueIdentified)

	now = now.Add(2 * time.Hour)
	s, err = store.GetOrCreate(ctx, "a")
	require.NoError(t, err)
	assert.False(t, s.Context.IssueIdentified, "expired session must come back empty")
}
