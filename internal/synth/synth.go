// Package synth generates the random response bodies served for each mock
// endpoint. Every call produces fresh values; nothing is retained between
// requests. The gofakeit package-level functions draw from a locked source,
// so handlers can call into this package concurrently.
package synth

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/routemock/routemock/internal/analyzer"
)

// numberPattern is the fixed-width digit pattern numbers are rendered
// through before being parsed back to an integer.
const numberPattern = "###"

// Member is one key/value pair of an ordered JSON object.
type Member struct {
	Key   string
	Value interface{}
}

// Object is a JSON object that marshals its members in insertion order, so
// response keys always follow the entity's declaration order.
type Object []Member

func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, member := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(member.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(member.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Record builds a response object for the entity, one freshly synthesized
// value per property, keys in declaration order.
func Record(entity analyzer.Entity) Object {
	object := make(Object, 0, len(entity.Properties))
	for _, property := range entity.Properties {
		object = append(object, Member{
			Key:   property.Name,
			Value: Value(property.Type),
		})
	}
	return object
}

// Value synthesizes a single random value for the primitive type.
func Value(t analyzer.PrimitiveType) interface{} {
	switch t {
	case analyzer.Boolean:
		return gofakeit.Bool()
	case analyzer.Number:
		n, _ := strconv.Atoi(gofakeit.Numerify(numberPattern))
		return n
	case analyzer.String:
		return gofakeit.Word()
	}
	return nil
}
