package steps

import (
	"context"
	"errors"
	"strings"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	"github.com/yyoonchul/murmur-blog/internal/platform/llm"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

type generationRequest struct {
	postID    string
	persona   types.Persona
	situation Situation
	post      types.PostBody
	thread    string
	parentID  string
	kind      string
}

// generateOne makes one Gateway call and persists a non-blank result. It
// returns nil when the call failed, came back blank, could not be saved, or
// the post was deleted in the meantime.
func generateOne(ctx context.Context, deps GenerationDeps, log *logger.Logger, req generationRequest) *types.Comment {
	log = log.With("persona_id", req.persona.ID, "kind", req.kind)

	system := BuildSystemPrompt(req.situation, req.persona.PromptContent)
	userMessage := BuildUserMessage(req.post, req.thread)
	log.Debug("calling gateway", "system_chars", len(system), "message_chars", len(userMessage))

	text, err := deps.Gateway.SendMessage(ctx, userMessage, llm.SendOptions{
		SystemPrompt: system,
		MaxTokens:    deps.MaxTokens,
	})
	if err != nil {
		log.Error("generation failed", "error", err)
		deps.Metrics.IncCommentGenerated(req.persona.ID, req.kind, "error")
		return nil
	}
	content := strings.TrimSpace(text)
	if content == "" {
		log.Warn("blank generation discarded")
		deps.Metrics.IncCommentGenerated(req.persona.ID, req.kind, "blank")
		return nil
	}

	c := types.Comment{
		ID:        deps.NewID(),
		PostID:    req.postID,
		PersonaID: req.persona.ID,
		Content:   content,
		CreatedAt: deps.Now(),
		ParentID:  req.parentID,
	}
	if err := AppendCommentIfPostExists(ctx, deps.Locks, deps.Posts, deps.Comments, req.postID, c); err != nil {
		if errors.Is(err, ErrPostDeleted) {
			log.Info("post deleted during generation, comment dropped")
			deps.Metrics.IncCommentGenerated(req.persona.ID, req.kind, "dropped")
			return nil
		}
		log.Error("persist comment failed", "error", err)
		deps.Metrics.IncCommentGenerated(req.persona.ID, req.kind, "persist_error")
		return nil
	}
	deps.Metrics.IncCommentGenerated(req.persona.ID, req.kind, "ok")
	if deps.Notifier != nil {
		deps.Notifier.CommentCreated(ctx, req.postID, c)
	}
	log.Info("comment saved", "comment_id", c.ID, "parent_id", c.ParentID, "chars", len(content))
	return &c
}
