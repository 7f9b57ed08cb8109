package atomic

import (
	"encoding/json"

	E "github.com/sagernet/sing/common/exceptions"
)

func (v *Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Load())
}

func (v *Value[T]) UnmarshalJSON(content []byte) error {
	var value T
	err := json.Unmarshal(content, &value)
	if err != nil {
		return E.Cause(err, "unmarshal value")
	}
	v.Store(value)
	return nil
}

func (t *TypedValue[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Load())
}

func (t *TypedValue[T]) UnmarshalJSON(content []byte) error {
	var value T
	err := json.Unmarshal(content, &value)
	if err != nil {
		return E.Cause(err, "unmarshal value")
	}
	t.Store(value)
	return nil
}

func (p *Packed[T, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Load())
}

func (p *Packed[T, R]) UnmarshalJSON(content []byte) error {
	var value T
	err := json.Unmarshal(content, &value)
	if err != nil {
		return E.Cause(err, "unmarshal value")
	}
	p.Store(value)
	return nil
}
