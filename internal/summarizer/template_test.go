package summarizer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/meetingassistant/meeting-assistant/internal/logger"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"meeting_text placeholder", "Summarize: {meeting_text}", false},
		{"legacy placeholder", "Summarize the meeting notes: {text}", false},
		{"repeated placeholder", "{meeting_text}\n---\n{meeting_text}", false},
		{"empty", "   ", true},
		{"no placeholder", "Summarize the meeting", true},
		{"unknown variable", "Summarize {meeting_text} for {audience}", true},
		{"mixed placeholders", "{text} and {meeting_text}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTemplateRender(t *testing.T) {
	tmpl, err := ParseTemplate("Summarize the meeting notes: {text}")
	if err != nil {
		t.Fatal(err)
	}
	if got := tmpl.Render("hello"); got != "Summarize the meeting notes: hello" {
		t.Errorf("Render() = %q", got)
	}

	builtin := BuiltinTemplate().Render("نص")
	if !strings.HasSuffix(builtin, "نص") {
		t.Errorf("builtin Render() = %q", builtin)
	}
}

func TestResolveTemplate(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug", "text")

	if !ResolveTemplate(ctx, "", log).IsBuiltin() {
		t.Error("empty override should resolve to builtin")
	}

	tmpl := ResolveTemplate(ctx, "Summary please: {meeting_text}", log)
	if tmpl.IsBuiltin() {
		t.Error("valid override should be used")
	}

	buf.Reset()
	tmpl = ResolveTemplate(ctx, "Summarize {who}", log)
	if !tmpl.IsBuiltin() {
		t.Error("malformed override should fall back to builtin")
	}
	if !strings.Contains(buf.String(), "using built-in") {
		t.Errorf("fallback should log a warning, got: %s", buf.String())
	}
}
