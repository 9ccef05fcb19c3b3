package domain

import (
	"time"
)

// Attributes is the raw, untyped payload an entity is constructed from.
// Request bodies are decoded into it so that a missing property can be told
// apart from a mistyped one.
type Attributes map[string]any

// ISOTimeLayout is how every exposed date is rendered.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z"

// FormatISOTime renders t in UTC with millisecond precision.
func FormatISOTime(t time.Time) string {
	return t.UTC().Format(ISOTimeLayout)
}

// ValidationKind classifies why an entity payload was rejected.
type ValidationKind int

const (
	MissingProperty ValidationKind = iota + 1
	InvalidType
	IsDeleteNotBoolean
	LimitChar
	RestrictedCharacter
)

func (k ValidationKind) String() string {
	switch k {
	case MissingProperty:
		return "NOT_CONTAIN_NEEDED_PROPERTY"
	case InvalidType:
		return "NOT_MEET_DATA_TYPE_SPECIFICATION"
	case IsDeleteNotBoolean:
		return "IS_DELETE_NOT_BOOLEAN"
	case LimitChar:
		return "LIMIT_CHAR"
	case RestrictedCharacter:
		return "CONTAIN_RESTRICTED_CHARACTER"
	default:
		return "UNKNOWN"
	}
}

// ValidationError is returned by every entity constructor. Its message is a
// stable code such as NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY which the HTTP
// layer translates for clients.
type ValidationError struct {
	Entity string
	Kind   ValidationKind
}

func (e *ValidationError) Error() string {
	return e.Entity + "." + e.Kind.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrBadParamInput
}

func newValidationError(entity string, kind ValidationKind) *ValidationError {
	return &ValidationError{Entity: entity, Kind: kind}
}

type fieldKind int

const (
	// textField must be a string, empty allowed.
	textField fieldKind = iota
	// identField must be a non-empty string; "" counts as missing.
	identField
	boolField
	// timeField accepts a non-empty string or a time.Time.
	timeField
	listField
)

type field struct {
	name string
	kind fieldKind
}

// validate runs the presence pass over every field first and the type pass
// second, so a payload both incomplete and mistyped reports MissingProperty.
func (a Attributes) validate(entity string, fields ...field) error {
	for _, f := range fields {
		if !a.present(f) {
			return newValidationError(entity, MissingProperty)
		}
	}
	for _, f := range fields {
		if !a.typed(f) {
			return newValidationError(entity, InvalidType)
		}
	}
	return nil
}

func (a Attributes) present(f field) bool {
	v, ok := a[f.name]
	if !ok || v == nil {
		return false
	}
	switch f.kind {
	case identField, timeField:
		if s, ok := v.(string); ok && s == "" {
			return false
		}
	}
	return true
}

func (a Attributes) typed(f field) bool {
	v := a[f.name]
	switch f.kind {
	case textField, identField:
		_, ok := v.(string)
		return ok
	case boolField:
		_, ok := v.(bool)
		return ok
	case timeField:
		switch v.(type) {
		case string, time.Time:
			return true
		}
		return false
	case listField:
		switch v.(type) {
		case []any, []Attributes, []map[string]any, []ReplyDetail, []CommentDetail:
			return true
		}
		return false
	}
	return false
}

func (a Attributes) str(key string) string {
	s, _ := a[key].(string)
	return s
}

func (a Attributes) boolean(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// isoTime normalizes a timeField value to ISOTimeLayout. Strings are kept as
// given unless they parse as RFC 3339, in which case they are re-rendered.
func (a Attributes) isoTime(key string) string {
	switch v := a[key].(type) {
	case time.Time:
		return FormatISOTime(v)
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return FormatISOTime(t)
		}
		return v
	}
	return ""
}

// asAttributes accepts the element shapes a decoded JSON array or a caller
// built slice may carry.
func asAttributes(v any) (Attributes, bool) {
	switch m := v.(type) {
	case Attributes:
		return m, true
	case map[string]any:
		return Attributes(m), true
	}
	return nil, false
}
