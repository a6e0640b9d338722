package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GRAMPOINT_LLM_PROVIDER",
		"GRAMPOINT_ANTHROPIC_API_KEY", "GRAMPOINT_OPENAI_API_KEY", "GRAMPOINT_GEMINI_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GRAMPOINT_LLM_PROVIDER", "openai")
	t.Setenv("GRAMPOINT_OPENAI_API_KEY", "sk-test")
	t.Setenv("GRAMPOINT_OPENAI_MODEL", "gpt-custom")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-custom" {
		t.Errorf("OpenAI config = %+v", cfg.OpenAI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "anthropic" {
		t.Errorf("default provider = %q", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default retry attempts = %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout <= 0 {
		t.Error("default timeout must be positive")
	}
}

func TestValidateRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic without key should fail validation")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider needs no key: %v", err)
	}

	cfg.Provider = "llamafile"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider should fail validation")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai before anthropic", cfg.Provider)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}
