package summarizer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/meetingassistant/meeting-assistant/internal/logger"
)

const (
	placeholder       = "{meeting_text}"
	legacyPlaceholder = "{text}"
)

const builtinTemplate = `قم بتلخيص نص الاجتماع التالي باللغة العربية في نقاط واضحة ومنظمة تتضمن:
1. الموضوعات الرئيسية التي تمت مناقشتها
2. القرارات التي تم اتخاذها
3. المهام المطلوبة والمسؤولين عنها (إن وجدت)
4. الخطوات التالية

نص الاجتماع:
{meeting_text}`

var rePlaceholder = regexp.MustCompile(`\{[A-Za-z_][A-Za-z0-9_]*\}`)

// Template is a prompt with exactly one transcript placeholder.
type Template struct {
	text        string
	placeholder string
	builtin     bool
}

// BuiltinTemplate returns the default Arabic meeting-summary prompt.
func BuiltinTemplate() Template {
	return Template{text: builtinTemplate, placeholder: placeholder, builtin: true}
}

// ParseTemplate validates an override template. It must reference
// {meeting_text} ({text} is accepted for older configs) and no other variable.
func ParseTemplate(s string) (Template, error) {
	if strings.TrimSpace(s) == "" {
		return Template{}, fmt.Errorf("template is empty")
	}

	var found string
	for _, name := range rePlaceholder.FindAllString(s, -1) {
		switch name {
		case placeholder, legacyPlaceholder:
			if found != "" && found != name {
				return Template{}, fmt.Errorf("template mixes %s and %s", found, name)
			}
			found = name
		default:
			return Template{}, fmt.Errorf("template references unknown variable %s", name)
		}
	}
	if found == "" {
		return Template{}, fmt.Errorf("template must contain %s", placeholder)
	}

	return Template{text: s, placeholder: found}, nil
}

// ResolveTemplate picks the override when it is valid and falls back to the
// built-in template otherwise.
func ResolveTemplate(ctx context.Context, override string, log logger.Logger) Template {
	if override == "" {
		return BuiltinTemplate()
	}

	tmpl, err := ParseTemplate(override)
	if err != nil {
		log.Warn(ctx, "Failed to initialize prompt template override, using built-in: %v", err)
		return BuiltinTemplate()
	}

	log.Info(ctx, "Prompt template override initialized successfully")
	return tmpl
}

// Render substitutes meetingText into the template.
func (t Template) Render(meetingText string) string {
	return strings.ReplaceAll(t.text, t.placeholder, meetingText)
}

// IsBuiltin reports whether this is the default template.
func (t Template) IsBuiltin() bool {
	return t.builtin
}
