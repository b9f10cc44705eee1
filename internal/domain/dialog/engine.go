package dialog

import (
	"context"
	"strings"
	"time"

	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

// Engine evaluates the dialog rule table against incoming messages and
// persists session state through a SessionStore.
//
// Rule priority per message, first match wins: greeting, domain flow,
// generic question pattern, default prompt.  Matching is substring
// containment over the lowercased message throughout.
type Engine struct {
	store  SessionStore
	logger logging.Logger
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(logger logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithClock overrides the history timestamp source.  Tests pin this to a
// fixed instant.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an Engine over store.
func NewEngine(store SessionStore, opts ...EngineOption) *Engine {
	e := &Engine{
		store:  store,
		logger: logging.NewNopLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Turn processes one user message for sessionID: loads (or implicitly
// creates) the session, appends the user turn, evaluates the rule table
// against the current context, appends the bot turn, and saves.  The caller
// must serialize concurrent turns for the same session id.
func (e *Engine) Turn(ctx context.Context, sessionID, message string) (Reply, error) {
	session, err := e.store.GetOrCreate(ctx, sessionID)
	if err != nil {
		return Reply{}, errors.Wrap(err, errors.CodeSessionStoreDown, "failed to load dialog session")
	}

	session.History = append(session.History, Turn{
		Role:      RoleUser,
		Message:   message,
		Timestamp: e.now(),
	})

	reply := e.respond(message, &session.Context)

	session.History = append(session.History, Turn{
		Role:      RoleBot,
		Message:   reply.Message,
		Timestamp: e.now(),
	})

	if err := e.store.Save(ctx, session); err != nil {
		return Reply{}, errors.Wrap(err, errors.CodeSessionStoreDown, "failed to save dialog session")
	}

	e.logger.Debug("dialog turn processed",
		logging.String("session_id", sessionID),
		logging.String("primary_issue", string(session.Context.PrimaryIssue)),
		logging.Int("history_len", len(session.History)),
	)
	return reply, nil
}

// History returns the session's turn history.  An unknown id yields an empty
// history, not an error.
func (e *Engine) History(ctx context.Context, sessionID string) ([]Turn, error) {
	session, err := e.store.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSessionStoreDown, "failed to load dialog session")
	}
	return session.History, nil
}

// ClearSession drops all history and context for sessionID.  The next turn
// behaves exactly like a brand-new session.
func (e *Engine) ClearSession(ctx context.Context, sessionID string) error {
	if err := e.store.Clear(ctx, sessionID); err != nil {
		return errors.Wrap(err, errors.CodeSessionStoreDown, "failed to clear dialog session")
	}
	return nil
}

func (e *Engine) respond(message string, sctx *Context) Reply {
	lower := strings.ToLower(message)

	if containsAny(lower, greeting.triggers) {
		return Reply{Message: greeting.response, Suggestions: greeting.suggestions}
	}

	for _, f := range flows {
		if !containsAny(lower, f.triggers) {
			continue
		}
		sctx.PrimaryIssue = f.key
		if sctx.IssueIdentified {
			return followUpReply(lower, f.key)
		}
		sctx.IssueIdentified = true
		return Reply{
			Message:     f.response + "\n\n" + f.followUp,
			Suggestions: f.suggestions,
		}
	}

	switch {
	case strings.Contains(lower, "right"):
		return rightsReply(sctx)
	case strings.Contains(lower, "do") && strings.Contains(lower, "now"):
		return actionsReply(sctx)
	case strings.Contains(lower, "lawyer") || strings.Contains(lower, "attorney"):
		return lawyerReply()
	case strings.Contains(lower, "cost") || strings.Contains(lower, "money") || strings.Contains(lower, "expensive"):
		return costReply()
	case strings.Contains(lower, "time") || strings.Contains(lower, "long"):
		return timingReply()
	}

	return defaultReply()
}

func containsAny(lower string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// followUpReply handles a message that re-matches a flow after the issue is
// already identified.  Sub-rules are keyed on words within the flow; the
// unmatched case falls through to the generic acknowledgement naming the
// flow.
func followUpReply(lower string, key FlowKey) Reply {
	switch key {
	case FlowArrest:
		if strings.Contains(lower, "right") {
			return Reply{
				Message:     quickRights[FlowArrest],
				Suggestions: []string{"What should I say to police?", "How do I get a lawyer?", "What about bail?"},
			}
		}
		if strings.Contains(lower, "lawyer") {
			return Reply{
				Message: "You have the right to a lawyer. If you can't afford one:\n\n" +
					"• Ask for a public defender\n" +
					"• Contact legal aid organizations\n" +
					"• Look for pro bono services\n" +
					"• Consider a payment plan with private attorneys\n\n" +
					"Never represent yourself in criminal matters - it's too risky.",
				Suggestions: []string{"How do I find a good lawyer?", "What questions should I ask?", "How much will it cost?"},
			}
		}
	case FlowEmployment:
		if strings.Contains(lower, "right") {
			return Reply{
				Message:     quickRights[FlowEmployment],
				Suggestions: []string{"How do I file a complaint?", "What is wrongful termination?", "Can I get unemployment?"},
			}
		}
		if strings.Contains(lower, "unemployment") {
			return Reply{
				Message: "To file for unemployment:\n\n" +
					"1. Apply immediately (don't wait)\n" +
					"2. Contact your state's unemployment office\n" +
					"3. Have your work history ready\n" +
					"4. Be honest about why you were terminated\n" +
					"5. Appeal if denied\n\n" +
					"Each state has different rules, so check your state's specific requirements.",
				Suggestions: []string{"What if I'm denied?", "How long does it take?", "What documents do I need?"},
			}
		}
	case FlowHousing:
		if strings.Contains(lower, "right") {
			return Reply{
				Message:     quickRights[FlowHousing],
				Suggestions: []string{"How do I fight an eviction?", "What about repairs?", "Can I withhold rent?"},
			}
		}
		if strings.Contains(lower, "eviction") {
			return Reply{
				Message: "To fight an eviction:\n\n" +
					"1. Don't move out immediately\n" +
					"2. Contact legal aid right away\n" +
					"3. Check if the eviction notice is valid\n" +
					"4. Consider negotiating with landlord\n" +
					"5. File an answer to the eviction lawsuit\n\n" +
					"Many evictions can be fought successfully with proper legal help.",
				Suggestions: []string{"What makes an eviction illegal?", "How long do I have?", "What if I can't afford a lawyer?"},
			}
		}
	}

	return Reply{
		Message: "Thank you for that information. Based on what you've told me about your " +
			string(key) + " situation, I recommend:\n\n" +
			"1. Document everything\n" +
			"2. Don't sign anything without legal review\n" +
			"3. Contact appropriate legal resources\n" +
			"4. Act quickly - time limits may apply\n\n" +
			"Would you like me to provide more specific guidance on any of these areas?",
		Suggestions: []string{"What documents should I gather?", "How do I find legal help?", "What are my next steps?"},
	}
}

func rightsReply(sctx *Context) Reply {
	if text, ok := quickRights[sctx.PrimaryIssue]; ok {
		return Reply{
			Message:     text,
			Suggestions: []string{"What should I do next?", "How do I enforce my rights?", "What if my rights were violated?"},
		}
	}
	return Reply{
		Message: "Your legal rights depend on your specific situation. To give you accurate information, " +
			"could you tell me more about your legal issue? For example:\n\n" +
			"• What type of legal problem are you facing?\n" +
			"• What happened that led to this situation?\n" +
			"• Are you dealing with employment, housing, criminal, or family law?",
		Suggestions: []string{"I was arrested", "I was fired", "I'm being evicted", "I'm getting divorced"},
	}
}

func actionsReply(sctx *Context) Reply {
	if text, ok := quickActions[sctx.PrimaryIssue]; ok {
		return Reply{
			Message:     text,
			Suggestions: []string{"What documents do I need?", "How do I find a lawyer?", "What are my legal options?"},
		}
	}
	return Reply{
		Message: "The immediate actions you should take depend on your specific legal situation. " +
			"To provide accurate guidance, I need to know:\n\n" +
			"• What type of legal problem are you facing?\n" +
			"• What just happened?\n" +
			"• What outcome are you hoping for?\n\n" +
			"Once I understand your situation better, I can give you specific steps to take right now.",
		Suggestions: []string{"I was just arrested", "I was just fired", "I just received an eviction notice"},
	}
}

func lawyerReply() Reply {
	return Reply{
		Message: "Finding the right lawyer is crucial. Here are your options:\n\n" +
			"**Free/Low-Cost Options:**\n" +
			"• Legal Aid organizations\n" +
			"• Pro bono services\n" +
			"• Public defenders (criminal cases)\n" +
			"• Law school clinics\n\n" +
			"**Private Attorneys:**\n" +
			"• Bar association referrals\n" +
			"• Online legal directories\n" +
			"• Personal recommendations\n" +
			"• Specialized legal organizations\n\n" +
			"**Questions to Ask:**\n" +
			"• Experience with your type of case\n" +
			"• Fee structure and costs\n" +
			"• Communication style\n" +
			"• Success rate\n\n" +
			"Always consult multiple attorneys before choosing.",
		Suggestions: []string{"How do I know if a lawyer is good?", "What questions should I ask?", "How much will it cost?"},
	}
}

func costReply() Reply {
	return Reply{
		Message: "Legal costs vary widely depending on your situation:\n\n" +
			"**Free Options:**\n" +
			"• Legal Aid (income-based)\n" +
			"• Pro bono services\n" +
			"• Public defenders\n" +
			"• Self-help resources\n\n" +
			"**Low-Cost Options:**\n" +
			"• Payment plans\n" +
			"• Contingency fees (personal injury)\n" +
			"• Flat fees for simple matters\n" +
			"• Legal insurance\n\n" +
			"**Cost Factors:**\n" +
			"• Case complexity\n" +
			"• Attorney experience\n" +
			"• Geographic location\n" +
			"• Time required\n\n" +
			"Don't let cost prevent you from getting legal help - many options exist for different budgets.",
		Suggestions: []string{"How do I find free legal help?", "What are payment plans?", "Is legal aid available?"},
	}
}

func timingReply() Reply {
	return Reply{
		Message: "Legal timing is critical and varies by situation:\n\n" +
			"**Immediate (Same Day):**\n" +
			"• Criminal arrests\n" +
			"• Emergency evictions\n" +
			"• Workplace safety issues\n\n" +
			"**Within Days:**\n" +
			"• Employment discrimination\n" +
			"• Contract disputes\n" +
			"• Family law emergencies\n\n" +
			"**Within Weeks:**\n" +
			"• Most civil lawsuits\n" +
			"• Administrative complaints\n" +
			"• Standard legal filings\n\n" +
			"**Important:** Many legal claims have strict deadlines (statutes of limitations). " +
			"Acting quickly often improves your chances of success and preserves your rights.",
		Suggestions: []string{"What are the deadlines for my case?", "How do I file quickly?", "What if I missed a deadline?"},
	}
}

func defaultReply() Reply {
	return Reply{
		Message: "I understand you're dealing with a legal situation. To help you better, could you " +
			"tell me more specifically about your issue? For example:\n\n" +
			"• What type of legal problem are you facing?\n" +
			"• What happened that led to this situation?\n" +
			"• What outcome are you hoping for?\n\n" +
			"I'm here to help guide you through your legal rights and options.",
		Suggestions: []string{
			"I need help with criminal charges",
			"I have an employment issue",
			"I'm dealing with a housing problem",
			"I need family law advice",
			"I have a contract dispute",
		},
	}
}
