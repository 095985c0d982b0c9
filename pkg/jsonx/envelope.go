package jsonx

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/tidwall/sjson"
)

// Envelope encodes message as a JSON object of the form
//
//	{"type": "<go type>", "message": <message as JSON>}
//
// so that messages of any type can be written to the same log stream.
func Envelope(message any) ([]byte, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", message, err)
	}

	result, err := sjson.SetBytes([]byte("{}"), "type", typeName(message))
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(result, "message", body)
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
