package chat

import "strings"

// MockResponses is the canned reply catalog. Picks are uniform; nothing in
// the reply depends on the user's text.
var MockResponses = []string{
	"I'm just a simple demo chatbot. How can I help you today?",
	"That's an interesting question! I'd need more information to give you a complete answer.",
	"I understand your query. Let me provide some information that might help.",
	"Thanks for your message! Is there anything specific you'd like to know about this topic?",
	"I'm here to assist with your questions. Could you provide more details?",
	"That's a great question! Here's what I know about that topic...",
	"I'm designed to help with various queries. What else would you like to know?",
	"I appreciate your patience. Let me think about how to best answer your question.",
	"I'm continuously learning to provide better responses. Your feedback helps me improve!",
	"Let me know if you need any clarification on my response.",
}

// Responder assembles mock assistant replies from a fixed catalog.
type Responder struct {
	catalog []string
	src     RandomSource
}

func NewResponder(catalog []string, src RandomSource) *Responder {
	if len(catalog) == 0 {
		catalog = MockResponses
	}
	if src == nil {
		src = NewRandomSource()
	}
	return &Responder{catalog: catalog, src: src}
}

// Random returns one catalog entry chosen uniformly at random.
func (r *Responder) Random() string {
	return r.catalog[r.src.Int64N(int64(len(r.catalog)))]
}

// ReplyContext carries the request-side context the reply sentence
// construction depends on.
type ReplyContext struct {
	Files           []UploadedFile
	Project         *Project
	KnowledgeSource *KnowledgeSource
}

// Compose builds the full assistant reply: a random catalog entry, prefixed
// with the attached file names when files were sent, suffixed with the
// project/knowledge-source sentence when both selections resolve.
func (r *Responder) Compose(rc ReplyContext) string {
	content := r.Random()

	if len(rc.Files) > 0 {
		names := make([]string, 0, len(rc.Files))
		for _, f := range rc.Files {
			names = append(names, f.Name)
		}
		content = "I can see you've uploaded: " + strings.Join(names, ", ") + ". " + content +
			" I can analyze these files and help you with document-related tasks like summarization, extraction, or translation."
	}

	if rc.Project != nil && rc.KnowledgeSource != nil {
		content += " I'm currently working within the \"" + rc.Project.Name +
			"\" project context and using \"" + rc.KnowledgeSource.Name + "\" as the knowledge source."
	}

	return content
}
