// Package codec converts between wire JSON and the entity shapes defined in
// the entity package. Every entity has one matched encode/decode pair, and
// DetectEntity resolves payloads whose shape is not known ahead of time.
//
// Decoding is pure: failures are returned as values, never logged, and no
// decoder performs I/O or retains state between calls.
package codec

import "fmt"

const (
	errorFormatWithField    = "decode %s: field %q: %s"
	errorFormatWithoutField = "decode %s: %s"
	errorFormatWithDetail   = "%s: %s"
)

// Reason classifies a decode failure.
type Reason string

// Decode failure reasons.
const (
	ReasonMissingField     Reason = "missing field"
	ReasonTypeMismatch     Reason = "type mismatch"
	ReasonUnknownEnumValue Reason = "unknown enum value"
	ReasonNoMatchingShape  Reason = "no matching shape"
)

// DecodeError reports why a wire payload could not be decoded. Entity names
// the shape being decoded and Field the dotted path of the offending field;
// Field is empty when the payload as a whole was unusable.
type DecodeError struct {
	Entity string
	Field  string
	Reason Reason
	Detail string
}

// Error formats the failure with its entity, field path, and reason.
func (decodeError *DecodeError) Error() string {
	message := string(decodeError.Reason)
	if decodeError.Detail != "" {
		message = fmt.Sprintf(errorFormatWithDetail, message, decodeError.Detail)
	}
	if decodeError.Field == "" {
		return fmt.Sprintf(errorFormatWithoutField, decodeError.Entity, message)
	}
	return fmt.Sprintf(errorFormatWithField, decodeError.Entity, decodeError.Field, message)
}
