package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yyoonchul/murmur-blog/internal/data/repos"
	"github.com/yyoonchul/murmur-blog/internal/data/seed"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the default persona library into the data directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, cfg, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		repo := repos.NewPersonaFileRepo(cfg.PersonaDir(), log)
		installed, err := seed.InstallPersonas(cmd.Context(), log, repo, initForce)
		if err != nil {
			return fmt.Errorf("install personas: %w", err)
		}
		if installed {
			fmt.Fprintf(cmd.OutOrStdout(), "personas written to %s\n", repo.Dir())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "personas already present in %s (use --force to overwrite)\n", repo.Dir())
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing persona roster")
}
