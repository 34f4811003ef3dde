package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"arabic yeh", "ي", "ی"},
		{"arabic kaf", "ك", "ک"},
		{"persian digits", "۱۲۳", "123"},
		{"arabic-indic digits", "٤٥٦", "456"},
		{"mixed digits", "گلها ۰٩", "گلها 09"},
		{"zwnj stripped", "می\u200cخواهم", "میخواهم"},
		{"whitespace collapsed", "  گل\t\n  های   رنگارنگ ", "گل های رنگارنگ"},
		{"lower case", "Golha RADIO", "golha radio"},
		{"combined", " برنامهٔ  شماره ۱۲ علي ", "برنامهٔ شماره 12 علی"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"ي ك ۱۲۳ ٤٥٦",
		"  Golha\u200c Javidan  ۳۰۵ ",
		"برگ سبز شماره ۲۱۰",
		"ABC def",
	}
	for _, in := range inputs {
		once := Text(in)
		if twice := Text(once); twice != once {
			t.Errorf("Text not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("  Beta   ۲ ")
	if len(got) != 2 || got[0] != "beta" || got[1] != "2" {
		t.Fatalf("Tokens = %q", got)
	}
	if got := Tokens("   "); len(got) != 0 {
		t.Fatalf("expected no tokens for blank input, got %q", got)
	}
}
