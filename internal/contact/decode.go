package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// FormError is the FieldErrors key for messages about the body as a whole.
// Details reports them under the top-level "_errors".
const FormError = ""

var errTrailingData = errors.New("unexpected data after JSON value")

// DecodeSubmission reads one JSON value from r. A body that is not exactly
// one JSON value is an error. A well-formed value of the wrong shape is not:
// it yields field errors, together with the schema's own, so callers can
// answer it like any invalid submission.
func DecodeSubmission(r io.Reader) (Submission, FieldErrors, error) {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return Submission{}, nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return Submission{}, nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Submission{}, FieldErrors{FormError: {"Expected object, received " + jsonKind(raw)}}, nil
	}

	var (
		s        Submission
		typeErrs = FieldErrors{}
	)
	for _, field := range Fields() {
		value, ok := fields[field]
		if !ok || jsonKind(value) == "null" {
			continue
		}
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			typeErrs[field] = []string{"Expected string, received " + jsonKind(value)}
			continue
		}
		s, _ = s.With(field, str)
	}

	errs := Validate(s)
	if len(typeErrs) == 0 {
		return s, errs, nil
	}
	if errs == nil {
		errs = FieldErrors{}
	}
	for field, msgs := range typeErrs {
		errs[field] = msgs
	}
	return s, errs, nil
}

// jsonKind names the type of a JSON value the way schema messages do.
func jsonKind(raw json.RawMessage) string {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return "undefined"
	}
	switch b[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
