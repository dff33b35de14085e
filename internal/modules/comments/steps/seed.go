package steps

import (
	"context"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
)

type GenerateInitialCommentsInput struct {
	PostID string
	Post   types.PostBody
}

type GenerateInitialCommentsOutput struct {
	Created []types.Comment
}

// GenerateInitialComments runs the first-reader pass in feedback order and
// then the sampled persona-to-persona replies. Per-persona failures are
// logged and skipped; the returned error only reports missing deps.
func GenerateInitialComments(ctx context.Context, deps GenerationDeps, in GenerateInitialCommentsInput) (GenerateInitialCommentsOutput, error) {
	var out GenerateInitialCommentsOutput
	if err := deps.validate(); err != nil {
		return out, err
	}
	deps = deps.withDefaults()
	log := deps.Log.With("post_id", in.PostID)

	roster := deps.Personas.Load(ctx)
	if roster.IsEmpty() {
		log.Warn("no personas loaded, skipping initial comments")
		return out, nil
	}
	log.Info("generating initial comments", "personas", len(roster.Personas), "feedback_order", roster.FeedbackOrder)

	for _, personaID := range roster.FeedbackOrder {
		if postDeleted(ctx, deps.Posts, in.PostID) {
			log.Info("post deleted, stopping initial comments", "created", len(out.Created))
			return out, nil
		}
		persona, ok := roster.Find(personaID)
		if !ok {
			log.Warn("persona in feedback order not found, skipping", "persona_id", personaID)
			continue
		}
		if c := generateOne(ctx, deps, log, generationRequest{
			postID:    in.PostID,
			persona:   persona,
			situation: SituationInitial,
			post:      in.Post,
			kind:      "initial",
		}); c != nil {
			out.Created = append(out.Created, *c)
		}
	}

	names := roster.DisplayNames()
	for _, rule := range PickReplyRules(deps.Rand, deps.ReplyRules, ReplyRulesPerPost) {
		rlog := log.With("replier", rule.Replier, "target", rule.Target)
		if postDeleted(ctx, deps.Posts, in.PostID) {
			rlog.Info("post deleted, stopping initial comments", "created", len(out.Created))
			return out, nil
		}
		replier, ok := roster.Find(rule.Replier)
		if !ok {
			rlog.Warn("replier persona not found, skipping rule")
			continue
		}

		comments, err := deps.Comments.Load(ctx, in.PostID)
		if err != nil {
			rlog.Error("load comments failed, skipping rule", "error", err)
			continue
		}
		target, ok := firstTopLevelBy(comments, rule.Target)
		if !ok {
			rlog.Warn("target has no top-level comment, skipping rule")
			continue
		}

		chain, truncated := ResolveThread(comments, target.ID)
		if truncated {
			rlog.Warn("comment parent cycle detected, thread truncated", "comment_id", target.ID)
		}
		if c := generateOne(ctx, deps, rlog, generationRequest{
			postID:    in.PostID,
			persona:   replier,
			situation: SituationReply,
			post:      in.Post,
			thread:    renderThread(chain, names),
			parentID:  target.ID,
			kind:      "inter_persona",
		}); c != nil {
			out.Created = append(out.Created, *c)
		}
	}

	log.Info("initial comments done", "created", len(out.Created))
	return out, nil
}

func firstTopLevelBy(comments []types.Comment, personaID string) (types.Comment, bool) {
	for _, c := range comments {
		if c.PersonaID == personaID && c.IsTopLevel() {
			return c, true
		}
	}
	return types.Comment{}, false
}
