package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

// Settings is the read side of the settings store the router needs.
type Settings interface {
	Get(key string) string
}

// Router dispatches to the provider named by the PROVIDER setting and fills
// in the MODEL setting when the caller leaves SendOptions.Model empty.
type Router struct {
	log       *logger.Logger
	settings  Settings
	fallback  string
	providers map[string]Provider
}

func NewRouter(log *logger.Logger, settings Settings, fallback string, providers ...Provider) *Router {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		if p == nil {
			continue
		}
		m[p.Name()] = p
	}
	if fallback == "" {
		fallback = ProviderAnthropic
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Router{
		log:       log.With("component", "llm.Router"),
		settings:  settings,
		fallback:  fallback,
		providers: m,
	}
}

// Active returns the provider currently selected by settings. Unknown names
// fall back to the router default.
func (r *Router) Active() (Provider, error) {
	name := r.fallback
	if r.settings != nil {
		if v := strings.TrimSpace(strings.ToLower(r.settings.Get("PROVIDER"))); v != "" {
			name = v
		}
	}
	if p, ok := r.providers[name]; ok {
		return p, nil
	}
	if p, ok := r.providers[r.fallback]; ok {
		r.log.Warn("unknown provider, using default", "provider", name, "default", r.fallback)
		return p, nil
	}
	return nil, fmt.Errorf("no provider registered for %q", name)
}

// Provider returns a registered provider by name.
func (r *Router) Provider(name string) (Provider, bool) {
	p, ok := r.providers[strings.TrimSpace(strings.ToLower(name))]
	return p, ok
}

func (r *Router) Names() []string {
	out := make([]string, 0, len(r.providers))
	for name := range r.providers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ResolveModel applies the opts, MODEL setting, provider default precedence.
func (r *Router) ResolveModel(p Provider, requested string) string {
	if m := strings.TrimSpace(requested); m != "" {
		return m
	}
	if r.settings != nil {
		if m := strings.TrimSpace(r.settings.Get("MODEL")); m != "" {
			return m
		}
	}
	return p.DefaultModel()
}

func (r *Router) SendMessage(ctx context.Context, userMessage string, opts SendOptions) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", &GenerationError{Provider: "router", Err: err}
	}
	opts.Model = r.ResolveModel(p, opts.Model)
	r.log.Debug("sending message", "provider", p.Name(), "model", opts.Model, "max_tokens", opts.MaxTokens)
	return p.SendMessage(ctx, userMessage, opts)
}
