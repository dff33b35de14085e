package steps

import (
	"context"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
)

type GenerateReplyInput struct {
	PostID  string
	Post    types.PostBody
	Trigger types.Comment
}

type GenerateReplyOutput struct {
	Replies []types.Comment
}

// GenerateReply answers a user comment with at most one persona reply. The
// reply attaches to the trigger's parent when it has one, else to the trigger.
// The returned error only reports missing deps.
func GenerateReply(ctx context.Context, deps GenerationDeps, in GenerateReplyInput) (GenerateReplyOutput, error) {
	var out GenerateReplyOutput
	if err := deps.validate(); err != nil {
		return out, err
	}
	deps = deps.withDefaults()
	log := deps.Log.With("post_id", in.PostID, "trigger_id", in.Trigger.ID)

	roster := deps.Personas.Load(ctx)
	comments, err := deps.Comments.Load(ctx, in.PostID)
	if err != nil {
		log.Error("load comments failed", "error", err)
		return out, nil
	}

	responder, rc, ok := SelectResponder(roster, comments, in.Trigger, deps.Rand)
	if !ok {
		log.Warn("no responder available", "case", rc.String(), "personas", len(roster.Personas))
		return out, nil
	}
	log.Debug("responder selected", "persona_id", responder.ID, "case", rc.String())

	chain, truncated := ResolveThread(comments, in.Trigger.ID)
	if truncated {
		log.Warn("comment parent cycle detected, thread truncated")
	}

	parentID := in.Trigger.ParentID
	if parentID == "" {
		parentID = in.Trigger.ID
	}
	if c := generateOne(ctx, deps, log, generationRequest{
		postID:    in.PostID,
		persona:   responder,
		situation: SituationReply,
		post:      in.Post,
		thread:    renderThread(chain, roster.DisplayNames()),
		parentID:  parentID,
		kind:      "reply",
	}); c != nil {
		out.Replies = append(out.Replies, *c)
	}
	return out, nil
}
