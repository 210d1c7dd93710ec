package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantErr   bool
		wantModel string
	}{
		{
			name:      "route ID kept verbatim",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash"},
			wantModel: "google/gemini-2.5-flash",
		},
		{
			name:      "anthropic route",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-haiku-4.5"},
			wantModel: "anthropic/claude-haiku-4.5",
		},
		{
			name: "custom base URL",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "google/gemini-2.5-flash",
				BaseURL: "https://router.internal.example/v1",
			},
			wantModel: "google/gemini-2.5-flash",
		},
		{
			name:    "missing API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.5-flash"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// OpenRouter route IDs bypass the short-name tables, so the
			// configured value must come back unchanged.
			if p.ModelID() != tt.wantModel {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}
