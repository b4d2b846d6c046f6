package document

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNew_DropsEmptyKeywords(t *testing.T) {
	doc := New("content", []string{" plumber ", "", "  ", "plumber cost"})

	want := []string{"plumber", "plumber cost"}
	if !reflect.DeepEqual(doc.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", doc.Keywords, want)
	}
}

func TestPrimary(t *testing.T) {
	doc := New("content", []string{"plumber cost", "plumber prices"})
	if got := doc.Primary(); got != "plumber cost" {
		t.Errorf("Primary() = %q, want %q", got, "plumber cost")
	}

	empty := New("content", nil)
	if got := empty.Primary(); got != "" {
		t.Errorf("Primary() on empty keywords = %q, want empty", got)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain first line",
			text: "How Much Does a Plumber Cost?\n\nBody text.",
			want: "How Much Does a Plumber Cost?",
		},
		{
			name: "markup stripped",
			text: "<h1>Plumber Prices in 2025</h1>\nBody.",
			want: "Plumber Prices in 2025",
		},
		{
			name: "markdown heading stripped",
			text: "# Plumber Prices\nBody.",
			want: "Plumber Prices",
		},
		{
			name: "leading blank lines skipped",
			text: "\n\n  \nActual Title",
			want: "Actual Title",
		},
		{
			name: "empty document",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(tt.text, nil)
			if got := doc.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadKeywords_PlainLines(t *testing.T) {
	path := writeTemp(t, "keywords.txt", "plumber cost\n\nplumber prices\n")

	got, err := ReadKeywords(path)
	if err != nil {
		t.Fatalf("ReadKeywords() returned error: %v", err)
	}

	want := []string{"plumber cost", "plumber prices"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadKeywords() = %v, want %v", got, want)
	}
}

func TestReadKeywords_CSVKeywordColumn(t *testing.T) {
	content := "id,Target Keyword,volume\n1,plumber cost,900\n2,plumber prices,400\n3,,100\n"
	path := writeTemp(t, "keywords.csv", content)

	got, err := ReadKeywords(path)
	if err != nil {
		t.Fatalf("ReadKeywords() returned error: %v", err)
	}

	want := []string{"plumber cost", "plumber prices"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadKeywords() = %v, want %v", got, want)
	}
}

func TestReadKeywords_CSVFirstColumnFallback(t *testing.T) {
	content := "term,volume\nplumber cost,900\nplumber prices,400\n"
	path := writeTemp(t, "keywords.csv", content)

	got, err := ReadKeywords(path)
	if err != nil {
		t.Fatalf("ReadKeywords() returned error: %v", err)
	}

	want := []string{"plumber cost", "plumber prices"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadKeywords() = %v, want %v", got, want)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}
