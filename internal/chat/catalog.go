package chat

// Demo catalogs. Projects and knowledge sources scope the assistant's
// context sentence; workflows and suggested prompts are canned inputs the
// presentation layer sends through the normal message path.

var Projects = []Project{
	{ID: "legal-contracts", Name: "Legal Contracts", Description: "Contract review, obligations and renewal tracking"},
	{ID: "financial-reports", Name: "Financial Reports", Description: "Quarterly statements and audit documentation"},
	{ID: "product-research", Name: "Product Research", Description: "Market studies, user interviews and competitor notes"},
	{ID: "hr-policies", Name: "HR Policies", Description: "Employee handbook and internal policy documents"},
}

var KnowledgeSources = []KnowledgeSource{
	{ID: "contracts-db", Name: "Contracts Database", Type: SourceDatabase, Description: "Indexed archive of executed agreements"},
	{ID: "docs-repo", Name: "Documentation Repository", Type: SourceRepository, Description: "Versioned internal documentation"},
	{ID: "shared-drive", Name: "Shared Document Drive", Type: SourceDocument, Description: "Uploaded PDFs, DOCX and text files"},
}

var Workflows = []Workflow{
	{
		ID:          "summarize",
		Title:       "Summarize Document",
		Description: "Get a concise summary of uploaded documents",
		Icon:        "📄",
		Prompt:      "Please provide a comprehensive summary of the uploaded document(s), highlighting the key points, main arguments, and important conclusions.",
	},
	{
		ID:          "extract-dates",
		Title:       "Extract Key Dates",
		Description: "Find and list important dates from documents",
		Icon:        "📅",
		Prompt:      "Please extract and list all important dates mentioned in the uploaded document(s), including deadlines, events, milestones, and any time-sensitive information.",
	},
	{
		ID:          "translate",
		Title:       "Translate Text",
		Description: "Translate content to different languages",
		Icon:        "🌐",
		Prompt:      "Please translate the content of the uploaded document(s) or the following text to [specify target language]. Maintain the original formatting and context.",
	},
	{
		ID:          "draft-response",
		Title:       "Draft Template Response",
		Description: "Create template-based responses",
		Icon:        "✍️",
		Prompt:      "Based on the uploaded document(s) or context provided, please draft a professional response template that addresses the main points and can be customized for different recipients.",
	},
	{
		ID:          "analyze-sentiment",
		Title:       "Analyze Sentiment",
		Description: "Analyze the tone and sentiment of text",
		Icon:        "😊",
		Prompt:      "Please analyze the sentiment and tone of the uploaded document(s) or text, identifying positive, negative, and neutral elements, as well as the overall emotional context.",
	},
	{
		ID:          "extract-action-items",
		Title:       "Extract Action Items",
		Description: "Find tasks and action items in documents",
		Icon:        "✅",
		Prompt:      "Please identify and list all action items, tasks, and to-do items mentioned in the uploaded document(s), including any assigned responsibilities and deadlines.",
	},
}

var SuggestedPrompts = []string{
	"What can you help me with?",
	"Analyze the uploaded document",
	"Summarize the key points",
	"Extract important dates and deadlines",
	"What are the main action items?",
	"Translate this content",
}

func ProjectByID(id string) (*Project, bool) {
	for i := range Projects {
		if Projects[i].ID == id {
			return &Projects[i], true
		}
	}
	return nil, false
}

func KnowledgeSourceByID(id string) (*KnowledgeSource, bool) {
	for i := range KnowledgeSources {
		if KnowledgeSources[i].ID == id {
			return &KnowledgeSources[i], true
		}
	}
	return nil, false
}

func WorkflowByID(id string) (*Workflow, bool) {
	for i := range Workflows {
		if Workflows[i].ID == id {
			return &Workflows[i], true
		}
	}
	return nil, false
}
