package schema

import (
	"encoding/json"
	"fmt"
)

// Schema is the contract for every typed message payload exchanged with a
// language model or a tool. Implementations are plain structs embedding Base.
type Schema interface {
	fmt.Stringer
}

// Stringify renders a schema for prompt transport. String schemas pass
// through untouched, everything else is JSON encoded.
func Stringify(s Schema) string {
	if v, ok := s.(String); ok {
		return string(v)
	}
	bs, _ := json.Marshal(s)
	return string(bs)
}

func ToBytes(s Schema) []byte {
	if v, ok := s.(String); ok {
		return []byte(v)
	}
	bs, _ := json.Marshal(s)
	return bs
}
