// Package domain holds the forum entities and the schemas that build them
// from untyped request payloads.
//
// Every entity is produced by a ParseX function. A payload missing a required
// key fails with <ENTITY>.NOT_CONTAIN_NEEDED_PROPERTY, a payload with a value
// of the wrong primitive type fails with <ENTITY>.NOT_MEET_DATA_TYPE_SPECIFICATION.
// The missing-key check runs over the whole schema before any type check.
package domain

import (
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

// Payload is an untyped input object, usually a decoded JSON body merged
// with route parameters.
type Payload map[string]any

type fieldKind int

const (
	kindString fieldKind = iota
	kindNullableString
)

type field struct {
	name     string
	kind     fieldKind
	optional bool
}

func required(name string) field {
	return field{name: name, kind: kindString}
}

func nullable(name string) field {
	return field{name: name, kind: kindNullableString, optional: true}
}

type schema struct {
	entity string
	fields []field
}

func newSchema(entity string, fields ...field) schema {
	return schema{entity: entity, fields: fields}
}

func (s schema) fail(reason internal_errors.ValidationReason) error {
	return &internal_errors.ValidationError{Entity: s.entity, Reason: reason}
}

func (s schema) validate(p Payload) error {
	for _, f := range s.fields {
		if f.optional {
			continue
		}
		if v, ok := p[f.name]; !ok || isBlank(v) {
			return s.fail(internal_errors.NotContainNeededProperty)
		}
	}
	for _, f := range s.fields {
		v, ok := p[f.name]
		if !ok {
			continue
		}
		if !f.kind.accepts(v) {
			return s.fail(internal_errors.NotMeetDataTypeSpecification)
		}
	}
	return nil
}

func (k fieldKind) accepts(v any) bool {
	switch k {
	case kindNullableString:
		if v == nil {
			return true
		}
		_, ok := v.(string)
		return ok
	default:
		_, ok := v.(string)
		return ok
	}
}

// isBlank treats zero values as absent, so {"content": ""} is reported as a
// missing property rather than accepted.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	}
	return false
}

func (p Payload) str(key string) string {
	s, _ := p[key].(string)
	return s
}

// isDeleted reports a soft-deleted row. A null or empty deleted_at is live.
func (p Payload) isDeleted() bool {
	d := p.nullableStr("deleted_at")
	return d != nil && *d != ""
}

func (p Payload) nullableStr(key string) *string {
	s, ok := p[key].(string)
	if !ok {
		return nil
	}
	return &s
}
