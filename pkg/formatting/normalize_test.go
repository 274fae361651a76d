package formatting_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/taxonomist/pkg/formatting"
)

const payload = `{"main": "B2C", "other": [], "justification": "Sells to consumers."}`

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", payload, payload},
		{"json fence", "```json\n" + payload + "\n```", payload},
		{"plain fence", "```\n" + payload + "\n```", payload},
		{"surrounding whitespace", "\n\n  " + payload + "  \n", payload},
		{"leading prose", "Here is the classification:\n" + payload, payload},
		{"trailing prose", payload + "\nLet me know if you need more.", payload},
		{"prose and fence", "Sure!\n```json\n" + payload + "\n```\nDone.", payload},
		{"no object", "  not json at all ", "not json at all"},
		{"empty", "", ""},
		{"nested braces", `{"a": {"b": 1}}`, `{"a": {"b": 1}}`},
		{"fence without newline", "```json" + payload + "```", payload},
		{"fence then trailing prose", "```json\n" + payload + "\n```\nHope this helps.", payload},
		{"bare fence only", "``````", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeKeepsBackticksInValues(t *testing.T) {
	inner := `{"main":"B2C","justification":"Ships a ` + "```bash```" + ` installer"}`

	tests := []struct {
		name  string
		input string
	}{
		{"bare", inner},
		{"fenced", "```json\n" + inner + "\n```"},
		{"prose and fence", "Result:\n```\n" + inner + "\n```\nDone."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.Normalize(tt.input); got != inner {
				t.Errorf("Normalize() = %q, want %q", got, inner)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		payload,
		"```json\n" + payload + "\n```",
		"text ```` ``json ``` more",
		"``" + "```json" + "`" + payload,
		"}{ reversed braces",
		"   ",
		"prefix { unterminated",
		"```````json",
		"```json\n" + `{"justification":"a ` + "```go```" + ` b"}` + "\n```",
	}

	for _, in := range inputs {
		once := formatting.Normalize(in)
		twice := formatting.Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestParse(t *testing.T) {
	type result struct {
		Main string `json:"main"`
	}

	t.Run("valid", func(t *testing.T) {
		got, err := formatting.Parse[result](payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Main != "B2C" {
			t.Errorf("main = %q, want B2C", got.Main)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := formatting.Parse[result]("{not json")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("err = %v, want ErrParseFailed", err)
		}
	})

	t.Run("fenced content is not unwrapped", func(t *testing.T) {
		_, err := formatting.Parse[result]("```json\n" + payload + "\n```")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("err = %v, want ErrParseFailed", err)
		}
	})
}
