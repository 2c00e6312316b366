package highlight

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Hello", "hello"},
		{"spaces removed", "hello world", "helloworld"},
		{"tabs and newlines", "a\tb\nc\r\nd", "abcd"},
		{"non-breaking space", "a\u00A0b", "ab"},
		{"ideographic space", "東京\u3000大阪", "東京大阪"},
		{"zero-width space", "ze\u200Bro", "zero"},
		{"zero-width joiner and non-joiner", "a\u200Db\u200Cc", "abc"},
		{"byte order mark", "\uFEFFlead", "lead"},
		{"mixed case and whitespace", "  Foo BAR  ", "foobar"},
		{"whitespace only", " \t\n \u3000", ""},
		{"cjk unaffected by folding", "日本語テスト", "日本語テスト"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{"", "Hello World", "東京\u3000タワー", "a\u200Bb C D", "ファイル\uFEFF"}

	for _, in := range inputs {
		once := NormalizeText(in)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeText_NeverGrows(t *testing.T) {
	inputs := []string{"HELLO", "a b c", "日本語 テスト", "\u200B\u200B", "Straße"}

	for _, in := range inputs {
		out := NormalizeText(in)
		if len([]rune(out)) > len([]rune(in)) {
			t.Errorf("NormalizeText(%q) grew from %d to %d runes", in, len([]rune(in)), len([]rune(out)))
		}
	}
}
