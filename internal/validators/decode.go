package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// spaceTrimmer is implemented by request bodies whose text fields are
// stored without surrounding whitespace.
type spaceTrimmer interface {
	TrimSpace()
}

// DecodeJSON decodes a single JSON object from r into dst.
//
// An empty body leaves dst untouched so that required-field checks report
// the missing fields. Values of the wrong JSON type are reported as
// FieldErrors keyed by the offending field; a malformed body, a non-object
// document or data after the object is reported under NonFieldErrorsKey.
// When dst implements TrimSpace, it is called after a successful decode.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)

	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		if err = checkNoTrailingData(dec); err != nil {
			return err
		}
		if t, ok := dst.(spaceTrimmer); ok {
			t.TrimSpace()
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return FieldErrors{NonFieldErrorsKey: {
				fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", typeErr.Value),
			}}
		}
		return FieldErrors{typeErr.Field: {typeMismatchMessage(typeErr.Type)}}
	}

	return FieldErrors{NonFieldErrorsKey: {fmt.Sprintf("JSON parse error - %s", err.Error())}}
}

func checkNoTrailingData(dec *json.Decoder) error {
	var extra json.RawMessage
	err := dec.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}

	msg := "unexpected data after top-level value"
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		msg = syntaxErr.Error()
	}
	return FieldErrors{NonFieldErrorsKey: {fmt.Sprintf("JSON parse error - %s", msg)}}
}

func typeMismatchMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return msgInvalidNumber
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return msgInvalidInteger
	case reflect.String:
		return msgInvalidString
	default:
		return msgInvalidValue
	}
}
