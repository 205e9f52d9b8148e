package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/masto-go/mastogo/internal/entity"
)

const (
	detailExpectedObject  = "expected a JSON object"
	detailExpectedArray   = "expected a JSON array"
	detailExpectedString  = "expected a string"
	detailExpectedNumber  = "expected a number"
	detailExpectedInteger = "expected an integer"
	detailExpectedBoolean = "expected a boolean"
	fieldPathSeparator    = "."
	fieldIndexFormat      = "%s[%d]"
)

var jsonNullLiteral = []byte("null")

func isNullValue(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNullLiteral)
}

// objectReader extracts typed fields from one JSON object. The first failure
// sticks: every later accessor becomes a no-op, so a decode function can read
// all of its fields unconditionally and check Err once at the end.
//
// Accessors implement the three per-field policies: required (absence or a
// wrong type fails), optional with default (absence yields the default, a
// present wrong type fails), and nullable (absence and JSON null both yield
// "no value").
type objectReader struct {
	entityName string
	fields     map[string]json.RawMessage
	raw        json.RawMessage
	err        *DecodeError
}

func newObjectReader(entityName string, data []byte) *objectReader {
	reader := &objectReader{
		entityName: entityName,
		raw:        append(json.RawMessage(nil), data...),
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil || isNullValue(reader.raw) {
		reader.fail("", ReasonTypeMismatch, detailExpectedObject)
		return reader
	}
	reader.fields = fields
	return reader
}

func (reader *objectReader) failed() bool {
	return reader.err != nil
}

// Err returns the first recorded failure, or nil.
func (reader *objectReader) Err() error {
	if reader.err != nil {
		return reader.err
	}
	return nil
}

// payload returns the complete original JSON value being decoded.
func (reader *objectReader) payload() json.RawMessage {
	return reader.raw
}

func (reader *objectReader) fail(field string, reason Reason, detail string) {
	if reader.err == nil {
		reader.err = &DecodeError{
			Entity: reader.entityName,
			Field:  field,
			Reason: reason,
			Detail: detail,
		}
	}
}

// nested records a child decoder's failure under the given field, rewriting
// the child's field into a dotted path on this reader's entity.
func (reader *objectReader) nested(field string, err error) {
	if reader.failed() || err == nil {
		return
	}
	var childError *DecodeError
	if errors.As(err, &childError) {
		path := field
		if childError.Field != "" {
			path = field + fieldPathSeparator + childError.Field
		}
		reader.err = &DecodeError{
			Entity: reader.entityName,
			Field:  path,
			Reason: childError.Reason,
			Detail: childError.Detail,
		}
		return
	}
	reader.fail(field, ReasonTypeMismatch, err.Error())
}

func (reader *objectReader) nestedIndex(field string, index int, err error) {
	reader.nested(fmt.Sprintf(fieldIndexFormat, field, index), err)
}

func (reader *objectReader) requiredValue(field string, target any, expected string) {
	if reader.failed() {
		return
	}
	raw, present := reader.fields[field]
	if !present {
		reader.fail(field, ReasonMissingField, "")
		return
	}
	if isNullValue(raw) || json.Unmarshal(raw, target) != nil {
		reader.fail(field, ReasonTypeMismatch, expected)
	}
}

func (reader *objectReader) optionalValue(field string, target any, expected string) {
	if reader.failed() {
		return
	}
	raw, present := reader.fields[field]
	if !present {
		return
	}
	if isNullValue(raw) || json.Unmarshal(raw, target) != nil {
		reader.fail(field, ReasonTypeMismatch, expected)
	}
}

func (reader *objectReader) requiredString(field string) string {
	var value string
	reader.requiredValue(field, &value, detailExpectedString)
	return value
}

func (reader *objectReader) requiredInt(field string) int {
	var value int
	reader.requiredValue(field, &value, detailExpectedInteger)
	return value
}

func (reader *objectReader) requiredBool(field string) bool {
	var value bool
	reader.requiredValue(field, &value, detailExpectedBoolean)
	return value
}

func (reader *objectReader) optionalBool(field string, fallback bool) bool {
	value := fallback
	reader.optionalValue(field, &value, detailExpectedBoolean)
	return value
}

func (reader *objectReader) optionalInt(field string, fallback int) int {
	value := fallback
	reader.optionalValue(field, &value, detailExpectedInteger)
	return value
}

func (reader *objectReader) optionalInt64(field string, fallback int64) int64 {
	value := fallback
	reader.optionalValue(field, &value, detailExpectedInteger)
	return value
}

func (reader *objectReader) optionalString(field string, fallback string) string {
	value := fallback
	reader.optionalValue(field, &value, detailExpectedString)
	return value
}

func (reader *objectReader) nullableString(field string) *string {
	raw, present := reader.nullableField(field)
	if !present {
		return nil
	}
	var value string
	if json.Unmarshal(raw, &value) != nil {
		reader.fail(field, ReasonTypeMismatch, detailExpectedString)
		return nil
	}
	return &value
}

func (reader *objectReader) nullableInt(field string) *int {
	raw, present := reader.nullableField(field)
	if !present {
		return nil
	}
	var value int
	if json.Unmarshal(raw, &value) != nil {
		reader.fail(field, ReasonTypeMismatch, detailExpectedInteger)
		return nil
	}
	return &value
}

func (reader *objectReader) nullableFloat(field string) *float64 {
	raw, present := reader.nullableField(field)
	if !present {
		return nil
	}
	var value float64
	if json.Unmarshal(raw, &value) != nil {
		reader.fail(field, ReasonTypeMismatch, detailExpectedNumber)
		return nil
	}
	return &value
}

func (reader *objectReader) requiredFloat(field string) float64 {
	var value float64
	reader.requiredValue(field, &value, detailExpectedNumber)
	return value
}

// requirePresence records a missing-field failure unless the key exists.
// The value itself is read separately; null values are allowed.
func (reader *objectReader) requirePresence(field string) {
	if reader.failed() {
		return
	}
	if _, present := reader.fields[field]; !present {
		reader.fail(field, ReasonMissingField, "")
	}
}

// nullableField returns the raw value when the key is present and non-null.
// Absence and JSON null are both "no value".
func (reader *objectReader) nullableField(field string) (json.RawMessage, bool) {
	if reader.failed() {
		return nil, false
	}
	raw, present := reader.fields[field]
	if !present || isNullValue(raw) {
		return nil, false
	}
	return raw, true
}

// requiredField returns the raw value of a mandatory key; null counts as a
// type mismatch, not as absence.
func (reader *objectReader) requiredField(field string) (json.RawMessage, bool) {
	if reader.failed() {
		return nil, false
	}
	raw, present := reader.fields[field]
	if !present {
		reader.fail(field, ReasonMissingField, "")
		return nil, false
	}
	if isNullValue(raw) {
		reader.fail(field, ReasonTypeMismatch, detailExpectedObject)
		return nil, false
	}
	return raw, true
}

func (reader *objectReader) stringList(field string) []string {
	values := []string{}
	if reader.failed() {
		return values
	}
	raw, present := reader.fields[field]
	if !present || isNullValue(raw) {
		return values
	}
	if json.Unmarshal(raw, &values) != nil {
		reader.fail(field, ReasonTypeMismatch, detailExpectedArray)
		return []string{}
	}
	return values
}

// decodeSlice decodes an array field element by element. Absence and JSON
// null both decode to an empty slice; an element failure is reported with
// its index in the field path.
func decodeSlice[T any](reader *objectReader, field string, decodeItem func([]byte) (T, error)) []T {
	items := []T{}
	if reader.failed() {
		return items
	}
	raw, present := reader.fields[field]
	if !present || isNullValue(raw) {
		return items
	}
	var elements []json.RawMessage
	if json.Unmarshal(raw, &elements) != nil {
		reader.fail(field, ReasonTypeMismatch, detailExpectedArray)
		return items
	}
	for index, element := range elements {
		item, err := decodeItem(element)
		if err != nil {
			reader.nestedIndex(field, index, err)
			return items
		}
		items = append(items, item)
	}
	return items
}

// decodeTopLevelSlice decodes a whole payload as a JSON array of entities.
func decodeTopLevelSlice[T any](entityName string, data []byte, decodeItem func([]byte) (T, error)) ([]T, error) {
	var elements []json.RawMessage
	if isNullValue(data) || json.Unmarshal(data, &elements) != nil {
		return nil, &DecodeError{Entity: entityName, Reason: ReasonTypeMismatch, Detail: detailExpectedArray}
	}
	items := []T{}
	for index, element := range elements {
		item, err := decodeItem(element)
		if err != nil {
			var childError *DecodeError
			if errors.As(err, &childError) {
				path := fmt.Sprintf("[%d]", index)
				if childError.Field != "" {
					path = path + fieldPathSeparator + childError.Field
				}
				return nil, &DecodeError{
					Entity: entityName,
					Field:  path,
					Reason: childError.Reason,
					Detail: childError.Detail,
				}
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (reader *objectReader) requiredVisibility(field string) entity.Visibility {
	value := entity.Visibility(reader.requiredString(field))
	if reader.failed() {
		return value
	}
	if !value.Valid() {
		reader.fail(field, ReasonUnknownEnumValue, string(value))
	}
	return value
}

func (reader *objectReader) nullableVisibility(field string) *entity.Visibility {
	raw := reader.nullableString(field)
	if raw == nil || reader.failed() {
		return nil
	}
	value := entity.Visibility(*raw)
	if !value.Valid() {
		reader.fail(field, ReasonUnknownEnumValue, *raw)
		return nil
	}
	return &value
}

func (reader *objectReader) requiredAttachmentType(field string) entity.AttachmentType {
	value := entity.AttachmentType(reader.requiredString(field))
	if reader.failed() {
		return value
	}
	if !value.Valid() {
		reader.fail(field, ReasonUnknownEnumValue, string(value))
	}
	return value
}

func (reader *objectReader) requiredCardType(field string) entity.CardType {
	value := entity.CardType(reader.requiredString(field))
	if reader.failed() {
		return value
	}
	if !value.Valid() {
		reader.fail(field, ReasonUnknownEnumValue, string(value))
	}
	return value
}

func (reader *objectReader) requiredNotificationType(field string) entity.NotificationType {
	value := entity.NotificationType(reader.requiredString(field))
	if reader.failed() {
		return value
	}
	if !value.Valid() {
		reader.fail(field, ReasonUnknownEnumValue, string(value))
	}
	return value
}

func (reader *objectReader) filterContextList(field string) []entity.FilterContext {
	contexts := []entity.FilterContext{}
	for index, raw := range reader.stringList(field) {
		value := entity.FilterContext(raw)
		if !value.Valid() {
			reader.fail(fmt.Sprintf(fieldIndexFormat, field, index), ReasonUnknownEnumValue, raw)
			return []entity.FilterContext{}
		}
		contexts = append(contexts, value)
	}
	return contexts
}
