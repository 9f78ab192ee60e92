package pipeline

import (
	"counsel/internal/textparse"
)

// FieldKind selects the extraction strategy for one schema field.
type FieldKind int

const (
	// KindScore extracts an integer clamped into [Lo, Hi].
	KindScore FieldKind = iota
	// KindEnum extracts one of Allowed, case-insensitively.
	KindEnum
	// KindList extracts dash-marked bullets under Section.
	KindList
	// KindNumberedList extracts "1." style entries under Section.
	KindNumberedList
	// KindText captures free text between Section and Terminators.
	KindText
	// KindRecords extracts repeated labeled sub-blocks under Section.
	KindRecords
)

// FieldSpec declares one extractable field of a stage's output. A
// stage's schema is the complete description of its result shape; the
// parser below is the only code that reads model output.
type FieldSpec struct {
	Key  string
	Kind FieldKind

	// Scalar fields.
	Label      string
	Lo, Hi     int
	Default    int
	Allowed    []string
	DefaultStr string

	// Section-scoped fields.
	Section     string
	Terminators []string

	// Record fields.
	LeadLabel   string
	FieldLabels []string
}

// Score declares a clamped integer field.
func Score(key, label string, lo, hi, def int) FieldSpec {
	return FieldSpec{Key: key, Kind: KindScore, Label: label, Lo: lo, Hi: hi, Default: def}
}

// Percent declares a 0-100 score field.
func Percent(key, label string, def int) FieldSpec {
	return Score(key, label, 0, 100, def)
}

// Enum declares a closed-vocabulary field.
func Enum(key, label string, allowed []string, def string) FieldSpec {
	return FieldSpec{Key: key, Kind: KindEnum, Label: label, Allowed: allowed, DefaultStr: def}
}

// List declares a bulleted list field scoped to a section.
func List(key, section string) FieldSpec {
	return FieldSpec{Key: key, Kind: KindList, Section: section}
}

// NumberedList declares a numbered list field scoped to a section.
func NumberedList(key, section string) FieldSpec {
	return FieldSpec{Key: key, Kind: KindNumberedList, Section: section}
}

// Text declares a free-text section field.
func Text(key, section string, terminators ...string) FieldSpec {
	return FieldSpec{Key: key, Kind: KindText, Section: section, Terminators: terminators}
}

// Records declares a repeated sub-block field.
func Records(key, section, leadLabel string, fieldLabels ...string) FieldSpec {
	return FieldSpec{Key: key, Kind: KindRecords, Section: section, LeadLabel: leadLabel, FieldLabels: fieldLabels}
}

// ParseSchema applies a schema to raw model output and always produces
// a complete Result: fields that cannot be extracted carry their
// declared defaults. Parsing never fails.
func ParseSchema(stage, raw string, schema []FieldSpec) *Result {
	r := NewResult(stage)
	r.Raw = raw

	for _, f := range schema {
		switch f.Kind {
		case KindScore:
			r.Scores[f.Key] = textparse.BoundedInt(raw, f.Label, f.Lo, f.Hi, f.Default)
		case KindEnum:
			r.Labels[f.Key] = textparse.Enum(raw, f.Label, f.Allowed, f.DefaultStr)
		case KindList:
			r.Lists[f.Key] = textparse.List(raw, "-", f.Section)
		case KindNumberedList:
			r.Lists[f.Key] = textparse.NumberedList(raw, f.Section)
		case KindText:
			r.Texts[f.Key] = textparse.SectionText(raw, f.Section, f.Terminators)
		case KindRecords:
			r.Records[f.Key] = textparse.BlockRecords(raw, f.Section, f.LeadLabel, f.FieldLabels)
		}
	}
	return r
}
