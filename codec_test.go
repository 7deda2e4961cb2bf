package fist

import "testing"

func TestJSONCodec_UnmarshalConfig(t *testing.T) {
	var cfg Config
	if err := (JSONCodec{}).Unmarshal([]byte(`{"name": "test", "strict_return": true}`), &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.Name != "test" {
		t.Errorf("expected name 'test', got %q", cfg.Name)
	}
	if !cfg.StrictReturn {
		t.Error("expected strict_return to be set")
	}
}

func TestJSONCodec_UnmarshalInvalid(t *testing.T) {
	var cfg Config
	if err := (JSONCodec{}).Unmarshal([]byte(`{not valid json}`), &cfg); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestYAMLCodec_UnmarshalConfig(t *testing.T) {
	var cfg Config
	if err := (YAMLCodec{}).Unmarshal([]byte("name: test\nerror_history: 42"), &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg.ErrorHistory != 42 {
		t.Errorf("expected error_history 42, got %d", cfg.ErrorHistory)
	}
}

func TestCodec_ContentTypes(t *testing.T) {
	if ct := (JSONCodec{}).ContentType(); ct != "application/json" {
		t.Errorf("expected 'application/json', got %q", ct)
	}
	if ct := (YAMLCodec{}).ContentType(); ct != "application/x-yaml" {
		t.Errorf("expected 'application/x-yaml', got %q", ct)
	}
}

func TestDetectCodec(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"object", `{"name": "x"}`, "application/json"},
		{"array with whitespace", "  \n[1, 2]", "application/json"},
		{"yaml", "name: x", "application/x-yaml"},
		{"empty", "", "application/x-yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCodec([]byte(tt.data)).ContentType(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
