// Package i18n formats validation rule messages.
//
// Rule text is resolved through a golang.org/x/text message catalog so a
// deployment can serve localized messages without touching the rule code.
// Services receive a *Messages collaborator; there is no package-global
// printer on purpose.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Rule identifies a validation rule kind. The rule key doubles as the
// catalog lookup key.
type Rule string

const (
	RuleRequired     Rule = "%s is required"
	RuleNotFound     Rule = "%s not found"
	RuleExists       Rule = "%s already exists"
	RuleInvalid      Rule = "%s is invalid"
	RuleNotZero      Rule = "%s must not be zero"
	RulePositive     Rule = "%s must be greater than zero"
	RuleSumMismatch  Rule = "%s does not match the sum of item quantities"
	RuleNotBefore    Rule = "%s must not be earlier than %s"
	RuleAtLeastOne   Rule = "%s must contain at least one line"
	RuleNotSupported Rule = "%s is not a supported value"
)

type entry struct {
	tag  language.Tag
	key  Rule
	text string
}

// The English text is the key itself; only non-English locales need rows.
var translations = []entry{
	{language.Indonesian, RuleRequired, "%s harus diisi"},
	{language.Indonesian, RuleNotFound, "%s tidak ditemukan"},
	{language.Indonesian, RuleExists, "%s sudah digunakan"},
	{language.Indonesian, RuleInvalid, "%s tidak valid"},
	{language.Indonesian, RuleNotZero, "%s tidak boleh nol"},
	{language.Indonesian, RulePositive, "%s harus lebih besar dari nol"},
	{language.Indonesian, RuleSumMismatch, "%s tidak sama dengan jumlah kuantitas barang"},
	{language.Indonesian, RuleNotBefore, "%s tidak boleh lebih awal dari %s"},
	{language.Indonesian, RuleAtLeastOne, "%s harus berisi minimal satu baris"},
	{language.Indonesian, RuleNotSupported, "%s bukan nilai yang didukung"},
}

// Messages resolves rule messages for one locale.
type Messages struct {
	printer *message.Printer
}

// NewMessages builds a Messages for tag, falling back to English for
// rules the locale does not translate.
func NewMessages(tag language.Tag) *Messages {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, tr := range translations {
		// Ignore SetString errors: entries are static and covered by tests.
		_ = builder.SetString(tr.tag, string(tr.key), tr.text)
	}
	return &Messages{
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// Default returns English messages.
func Default() *Messages {
	return NewMessages(language.English)
}

// Format renders the message for rule with args (usually the field name).
func (m *Messages) Format(rule Rule, args ...any) string {
	return m.printer.Sprintf(string(rule), args...)
}
