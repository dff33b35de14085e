package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yyoonchul/murmur-blog/internal/app"
	types "github.com/yyoonchul/murmur-blog/internal/domain"
	apperrors "github.com/yyoonchul/murmur-blog/internal/pkg/errors"
)

var replyTo string

var generateCmd = &cobra.Command{
	Use:   "generate <post-id>",
	Short: "Run one generation pass for a post and print the new comments",
	Long: `Without --reply-to this seeds the post with initial persona comments.
With --reply-to it generates the reply to that comment.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&replyTo, "reply-to", "", "comment id to reply to")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log, cfg, err := setup()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	a, err := app.New(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	post, err := a.Repos.Posts.Get(ctx, args[0])
	if err != nil {
		return err
	}

	var created []types.Comment
	if replyTo == "" {
		created, err = a.Services.Generation.Seed(ctx, post)
	} else {
		var trigger *types.Comment
		existing, loadErr := a.Repos.Comments.Load(ctx, post.ID)
		if loadErr != nil {
			return loadErr
		}
		for i := range existing {
			if existing[i].ID == replyTo {
				trigger = &existing[i]
				break
			}
		}
		if trigger == nil {
			return fmt.Errorf("comment %s: %w", replyTo, apperrors.ErrNotFound)
		}
		created, err = a.Services.Generation.Reply(ctx, post, *trigger)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(created)
}
