package rules

import "testing"

func TestExtractCityName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     string
	}{
		{
			name:     "keyword with locative preposition",
			keywords: []string{"plumber in Rotterdam"},
			want:     "Rotterdam",
		},
		{
			name:     "keyword near pattern",
			keywords: []string{"electrician near Utrecht"},
			want:     "Utrecht",
		},
		{
			name:     "two word city in keyword",
			keywords: []string{"movers in New York"},
			want:     "New York",
		},
		{
			name:     "keywords win over text",
			text:     "We operate in Amsterdam.",
			keywords: []string{"plumber in Rotterdam"},
			want:     "Rotterdam",
		},
		{
			name: "text locative preposition",
			text: "Our plumbers work in Amsterdam every day.",
			want: "Amsterdam",
		},
		{
			name: "text trailing locative",
			text: "We cover the whole Rotterdam area with same-day service.",
			want: "Rotterdam",
		},
		{
			name:     "no locative pattern anywhere",
			text:     "Quality plumbing at fair prices.",
			keywords: []string{"plumber cost"},
			want:     UnknownCity,
		},
		{
			name: "lowercase city does not match",
			text: "we work in rotterdam",
			want: UnknownCity,
		},
		{
			name: "empty input",
			want: UnknownCity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCityName(tt.text, tt.keywords); got != tt.want {
				t.Errorf("ExtractCityName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractCityName_FirstMatchWins(t *testing.T) {
	keywords := []string{"plumber rates", "plumber in Rotterdam", "plumber in Amsterdam"}

	if got := ExtractCityName("", keywords); got != "Rotterdam" {
		t.Errorf("ExtractCityName() = %q, want first keyword match Rotterdam", got)
	}
}

func TestCityMentionDensity(t *testing.T) {
	text := "Rotterdam plumbers serve Rotterdam households."

	// 5 words, 2 mentions = 40%.
	if got := CityMentionDensity(text, "Rotterdam"); got != 40.0 {
		t.Errorf("CityMentionDensity() = %v, want 40.0", got)
	}

	if got := CityMentionDensity(text, UnknownCity); got != 0 {
		t.Errorf("CityMentionDensity(sentinel) = %v, want 0", got)
	}
	if got := CityMentionDensity("", "Rotterdam"); got != 0 {
		t.Errorf("CityMentionDensity(empty text) = %v, want 0", got)
	}
}
