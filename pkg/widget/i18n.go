package widget

import (
	"strings"

	"github.com/herald-cms/go-herald/pkg/catalog"
)

// Translator resolves message keys for a locale. The built-in bundle covers
// the widget's own strings; hosts with their own translation pipeline can
// inject one to override them.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// Message keys used by the render engine.
const (
	msgSelectPrompt    = "widget.selectPrompt"
	msgAutoHeading     = "widget.autoFields"
	msgAutoNone        = "widget.autoFieldsNone"
	msgRequiredHeading = "widget.requiredFields"
	msgOptionalHeading = "widget.optionalFields"
	msgExampleHeading  = "widget.example"
	msgDocsLink        = "widget.docs"
	msgDefaultBadge    = "widget.defaultBadge"
	msgPropertiesLabel = "widget.properties"
	msgInvalidJSON     = "widget.invalidJSON"
)

var builtinMessages = map[string][2]string{
	msgSelectPrompt:    {"Select a schema type above to edit its properties.", "上のスキーマタイプを選択するとプロパティを編集できます。"},
	msgAutoHeading:     {"Auto-populated", "自動入力"},
	msgAutoNone:        {"No properties are auto-populated for this type.", "このタイプに自動入力されるプロパティはありません。"},
	msgRequiredHeading: {"Required properties", "必須プロパティ"},
	msgOptionalHeading: {"Optional properties", "任意プロパティ"},
	msgExampleHeading:  {"Example", "入力例"},
	msgDocsLink:        {"Schema.org reference", "Schema.orgリファレンス"},
	msgDefaultBadge:    {"default", "既定"},
	msgPropertiesLabel: {"Custom properties (JSON)", "カスタムプロパティ（JSON）"},
	msgInvalidJSON:     {"Invalid JSON. The last valid value is kept.", "JSONが不正です。最後の有効な値が保持されます。"},
}

// message resolves a key through the configured translator first, then the
// built-in bundle. Unknown keys come back verbatim so a missing translation is
// visible rather than silent.
func (w *Instance) message(key string) string {
	if w.translator != nil {
		if out, err := w.translator.Translate(w.locale, key); err == nil && strings.TrimSpace(out) != "" {
			return out
		}
	}
	if pair, ok := builtinMessages[key]; ok {
		if w.locale == catalog.LocaleJA && pair[1] != "" {
			return pair[1]
		}
		return pair[0]
	}
	return key
}
