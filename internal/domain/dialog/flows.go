package dialog

// FlowKey names one of the predefined conversation flows.
type FlowKey string

const (
	FlowArrest     FlowKey = "arrest"
	FlowEmployment FlowKey = "employment"
	FlowHousing    FlowKey = "housing"
	FlowFamily     FlowKey = "family"
	FlowContract   FlowKey = "contract"
)

// Reply is the payload of one dialog turn: the response text and the
// suggested follow-up prompts, in display order.
type Reply struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// greeting is matched before any flow and never alters context.
var greeting = struct {
	triggers    []string
	response    string
	suggestions []string
}{
	triggers: []string{"hello", "hi", "hey", "start", "begin"},
	response: "Hello! I'm your AI Legal Assistant. I can help you understand your legal rights " +
		"and provide guidance on various legal matters. What legal situation would you like to discuss today?",
	suggestions: []string{
		"I was arrested",
		"I was fired from my job",
		"My landlord is evicting me",
		"I'm going through a divorce",
		"I have a contract dispute",
	},
}

// flow is one domain conversation flow.  The first match for a session emits
// response + followUp and marks the issue identified; later matches route to
// the follow-up handler instead.
type flow struct {
	key         FlowKey
	triggers    []string
	response    string
	followUp    string
	suggestions []string
}

// flows is evaluated in order; the first flow with a matching trigger wins.
var flows = []flow{
	{
		key:      FlowArrest,
		triggers: []string{"arrested", "arrest", "police", "charged", "criminal"},
		response: "I understand you're dealing with a criminal law situation. This is serious and " +
			"you have important rights. Let me help you understand what you should do.",
		followUp: "Can you tell me more about your situation? For example:\n" +
			"- When were you arrested?\n" +
			"- What were you charged with?\n" +
			"- Do you have a lawyer?\n" +
			"- Are you currently in custody?",
		suggestions: []string{
			"What are my rights when arrested?",
			"How do I get a lawyer?",
			"What should I say to the police?",
			"How do I post bail?",
		},
	},
	{
		key:      FlowEmployment,
		triggers: []string{"fired", "terminated", "laid off", "job", "work", "employment", "discrimination", "harassment"},
		response: "I see you're dealing with an employment law issue. This can be stressful, but " +
			"you have rights as an employee. Let me help you understand your situation.",
		followUp: "To better assist you, I need to know:\n" +
			"- Why were you terminated?\n" +
			"- Did you receive any written notice?\n" +
			"- Were there any warning signs?\n" +
			"- Do you have documentation?",
		suggestions: []string{
			"What are my rights when fired?",
			"How do I file for unemployment?",
			"Can I sue for wrongful termination?",
			"What is workplace discrimination?",
		},
	},
	{
		key:      FlowHousing,
		triggers: []string{"eviction", "evicted", "landlord", "rent", "lease", "apartment", "house"},
		response: "I understand you're facing a housing law issue. Tenant rights are important and " +
			"there are legal protections in place. Let me help you understand your rights.",
		followUp: "To provide better guidance, please tell me:\n" +
			"- What type of notice did you receive?\n" +
			"- How long have you lived there?\n" +
			"- Are you behind on rent?\n" +
			"- Are there any habitability issues?",
		suggestions: []string{
			"What are my tenant rights?",
			"How do I fight an eviction?",
			"Can I withhold rent for repairs?",
			"What is a security deposit dispute?",
		},
	},
	{
		key:      FlowFamily,
		triggers: []string{"divorce", "custody", "child", "marriage", "spouse", "alimony"},
		response: "I understand you're dealing with a family law matter. These situations can be " +
			"emotionally challenging, but understanding your legal rights is important.",
		followUp: "To help you better, I need to know:\n" +
			"- Are you married or in a domestic partnership?\n" +
			"- Do you have children together?\n" +
			"- Have you already filed for divorce?\n" +
			"- Are there custody concerns?",
		suggestions: []string{
			"How do I file for divorce?",
			"What are my custody rights?",
			"How is child support calculated?",
			"What is the divorce process?",
		},
	},
	{
		key:      FlowContract,
		triggers: []string{"contract", "agreement", "breach", "lawsuit", "damages", "settlement"},
		response: "I see you're dealing with a contract or civil law issue. Understanding your " +
			"legal options is crucial in these situations.",
		followUp: "To provide specific guidance, please tell me:\n" +
			"- What type of contract is involved?\n" +
			"- What was the breach?\n" +
			"- Do you have evidence?\n" +
			"- What damages are you seeking?",
		suggestions: []string{
			"How do I sue for breach of contract?",
			"What evidence do I need?",
			"Should I hire a lawyer?",
			"What are my damages?",
		},
	},
}

// quickRights holds per-flow rights summaries for the "what are my rights"
// shortcut.  Family and contract flows have no entry and fall back to the
// clarifying prompt.
var quickRights = map[FlowKey]string{
	FlowArrest: "When arrested, you have the right to:\n" +
		"• Remain silent\n" +
		"• Speak to a lawyer\n" +
		"• Be informed of charges\n" +
		"• A speedy trial\n" +
		"• Protection from unreasonable searches",
	FlowEmployment: "As an employee, you have the right to:\n" +
		"• Minimum wage and overtime\n" +
		"• Safe working conditions\n" +
		"• Protection from discrimination\n" +
		"• Family and medical leave\n" +
		"• Workers' compensation",
	FlowHousing: "As a tenant, you have the right to:\n" +
		"• Habitable living conditions\n" +
		"• Privacy in your home\n" +
		"• Proper notice before eviction\n" +
		"• Return of security deposit\n" +
		"• Fair housing without discrimination",
}

// quickActions is keyed by situation label rather than flow key; only the
// arrest flow lines up with a key, so employment and housing sessions asking
// "what do I do now" receive the clarifying prompt instead.  This mirrors
// the established response behaviour and is covered by tests.
var quickActions = map[FlowKey]string{
	"arrest": "If arrested:\n" +
		"1. Stay calm and don't resist\n" +
		"2. Say 'I want to speak to my lawyer'\n" +
		"3. Don't answer questions without counsel\n" +
		"4. Don't consent to searches\n" +
		"5. Contact family/friends",
	"fired": "If fired:\n" +
		"1. Request written termination letter\n" +
		"2. Collect all documents\n" +
		"3. File for unemployment immediately\n" +
		"4. Contact Department of Labor\n" +
		"5. Consider legal consultation",
	"eviction": "If facing eviction:\n" +
		"1. Review the eviction notice carefully\n" +
		"2. Contact legal aid immediately\n" +
		"3. Don't move out without legal advice\n" +
		"4. Document all communications\n" +
		"5. Consider negotiating with landlord",
}
