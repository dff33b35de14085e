package app

import (
	"github.com/yyoonchul/murmur-blog/internal/jobs/worker"
	"github.com/yyoonchul/murmur-blog/internal/modules/comments"
	"github.com/yyoonchul/murmur-blog/internal/observability"
	"github.com/yyoonchul/murmur-blog/internal/pkg/keymutex"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
	"github.com/yyoonchul/murmur-blog/internal/services"
)

type Services struct {
	Dispatcher *worker.Dispatcher
	Notifier   services.PostNotifier
	Comments   comments.Usecases

	Generation services.GenerationService
	Post       services.PostService
	Comment    services.CommentService
	Persona    services.PersonaService
	Settings   services.SettingsService
}

func wireServices(log *logger.Logger, cfg Config, metrics *observability.Metrics, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")

	// Every writer of a post's comment list shares these locks.
	locks := keymutex.New()

	dispatcher := worker.NewDispatcher(log, metrics, cfg.DispatchWorkers, cfg.DispatchQueue)
	notifier := services.NewPostNotifier(&services.BusEmitter{Bus: clients.Bus, Log: log})

	usecases := comments.New(comments.UsecasesDeps{
		Log:       log.With("module", "comments"),
		Gateway:   clients.Gateway,
		Personas:  reposet.Personas,
		Comments:  reposet.Comments,
		Posts:     reposet.Posts,
		Locks:     locks,
		Notifier:  notifier,
		Metrics:   metrics,
		MaxTokens: cfg.MaxCommentTokens,
	})
	generation := services.NewGenerationService(log, usecases, dispatcher, notifier)

	return Services{
		Dispatcher: dispatcher,
		Notifier:   notifier,
		Comments:   usecases,
		Generation: generation,
		Post:       services.NewPostService(log, reposet.Posts, reposet.Comments, locks, generation),
		Comment:    services.NewCommentService(log, reposet.Posts, reposet.Comments, locks, generation, notifier),
		Persona:    services.NewPersonaService(log, reposet.Personas),
		Settings:   services.NewSettingsService(log, clients.Settings, clients.Router),
	}
}
