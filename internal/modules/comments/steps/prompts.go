package steps

import (
	"strings"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
)

type Situation string

const (
	SituationInitial Situation = "initial"
	SituationReply   Situation = "reply"
)

// PromptSeparator sits between the situation header and the persona voice,
// and between the post and the comment context.
const PromptSeparator = "\n\n---\n\n"

const commentContextHeading = "## Comment Context"

const situationInitialHeader = `You are a reader who has just finished this blog post and are leaving the first comment.
Share what you felt, what resonated with you, or what you are curious about in 1-3 sentences.
Output only the comment text, with no explanation or meta commentary.`

const situationReplyHeader = `You are a reader replying to an existing comment on this blog post.
Considering the earlier comments in the thread, reply in 1-3 sentences in a natural way.
Output only the comment text, with no explanation or meta commentary.`

// BuildSystemPrompt returns the situation header followed by PromptSeparator
// and personaVoice. Any situation other than SituationInitial uses the reply header.
func BuildSystemPrompt(situation Situation, personaVoice string) string {
	header := situationReplyHeader
	if situation == SituationInitial {
		header = situationInitialHeader
	}
	return header + PromptSeparator + personaVoice
}

// BuildUserMessage renders the post as markdown. An empty threadContext is
// treated as absent.
func BuildUserMessage(post types.PostBody, threadContext string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(post.Title)
	b.WriteString("\n\n")
	b.WriteString(post.Content)
	if threadContext != "" {
		b.WriteString(PromptSeparator)
		b.WriteString(commentContextHeading)
		b.WriteString("\n\n")
		b.WriteString(threadContext)
	}
	return b.String()
}
