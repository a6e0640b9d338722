package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/jiahui/grampoint/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event-logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → timeout → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)
	if cfg.Timeout > 0 {
		return &timeoutProvider{inner: retried, timeout: cfg.Timeout}, nil
	}
	return retried, nil
}

// timeoutProvider bounds each call, retries included, with the configured
// request timeout.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) StreamText(ctx context.Context, req Request, emit func(string)) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return StreamOrGenerate(ctx, t.inner, req, emit)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

// NewProviderFromEnv builds a Provider from GRAMPOINT_* variables, falling
// back to probing the standard provider API key variables when no explicit
// configuration validates.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
