// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedRelation marks a relation payload that could not be decoded.
var ErrMalformedRelation = errors.New("catalog: malformed relation payload")

// Decoded is the outcome of decoding one relation payload.
//
// IDs is always non-nil and safe to use. Err is set when the payload was
// malformed; IDs then holds whatever could be salvaged, usually nothing.
type Decoded struct {
	IDs []string
	Err error
}

// OK reports whether the payload decoded cleanly.
func (d Decoded) OK() bool {
	return d.Err == nil
}

/*
DecodeIDs turns a stored author/translator payload into an id list.

Accepted forms:

  - nil, empty input, JSON null: no ids.
  - []string: returned as is.
  - []any: string and numeric elements are kept in order. Nil and
    non-scalar elements are dropped and reported through Err.
  - string, []byte, json.RawMessage: parsed as JSON. An array is the id list.
    A JSON string is unwrapped once and parsed again, which covers rows that
    were serialized twice.

Any other input yields no ids and a non-nil Err wrapping [ErrMalformedRelation].
DecodeIDs never panics.
*/
func DecodeIDs(raw any) Decoded {
	switch value := raw.(type) {
	case nil:
		return Decoded{IDs: []string{}}
	case []string:
		if value == nil {
			return Decoded{IDs: []string{}}
		}
		return Decoded{IDs: value}
	case []any:
		return fromList(value)
	case string:
		return decodeJSON([]byte(value), true)
	case []byte:
		return decodeJSON(value, true)
	case json.RawMessage:
		return decodeJSON(value, true)
	default:
		return malformed(fmt.Errorf("%w: unsupported type %T", ErrMalformedRelation, raw))
	}
}

func decodeJSON(data []byte, unwrap bool) Decoded {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Decoded{IDs: []string{}}
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var parsed any
	if err := decoder.Decode(&parsed); err != nil {
		return malformed(fmt.Errorf("%w: %v", ErrMalformedRelation, err))
	}
	if decoder.InputOffset() != int64(len(data)) {
		return malformed(fmt.Errorf("%w: trailing data", ErrMalformedRelation))
	}

	switch value := parsed.(type) {
	case nil:
		return Decoded{IDs: []string{}}
	case []any:
		return fromList(value)
	case string:
		if unwrap {
			return decodeJSON([]byte(value), false)
		}
		return malformed(fmt.Errorf("%w: nested string encoding", ErrMalformedRelation))
	default:
		return malformed(fmt.Errorf("%w: expected array, got %T", ErrMalformedRelation, parsed))
	}
}

func fromList(values []any) Decoded {
	ids := make([]string, 0, len(values))
	skipped := 0

	for _, element := range values {
		switch value := element.(type) {
		case string:
			ids = append(ids, value)
		case json.Number:
			ids = append(ids, value.String())
		case float64:
			ids = append(ids, strconv.FormatFloat(value, 'f', -1, 64))
		case int:
			ids = append(ids, strconv.Itoa(value))
		case int64:
			ids = append(ids, strconv.FormatInt(value, 10))
		default:
			skipped++
		}
	}

	if skipped > 0 {
		return Decoded{IDs: ids, Err: fmt.Errorf("%w: %d non-scalar elements skipped", ErrMalformedRelation, skipped)}
	}
	return Decoded{IDs: ids}
}

func malformed(err error) Decoded {
	return Decoded{IDs: []string{}, Err: err}
}
