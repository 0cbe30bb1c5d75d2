package remote

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	statusField = "_status"
	originField = "_origin"
	dataField   = "data"
)

// Result wraps a payload with the status tag describing how it was obtained.
// Payload is always usable: on degradation it holds the fallback.
type Result[T any] struct {
	Payload T
	Status  Status
	Origin  Origin
}

// Live wraps a payload fetched from the remote.
func Live[T any](payload T) Result[T] {
	return Result[T]{Payload: payload, Status: StatusLive, Origin: OriginRemote}
}

// Degrade wraps a fallback with the given degraded status.
func Degrade[T any](fallback T, status Status) Result[T] {
	return Result[T]{Payload: fallback, Status: status, Origin: status.Origin()}
}

// Map transforms a live payload with fn. Degraded results get the provided
// fallback instead; status and origin are preserved either way.
func Map[T, U any](r Result[T], fn func(T) U, fallback U) Result[U] {
	if r.Status != StatusLive {
		return Result[U]{Payload: fallback, Status: r.Status, Origin: r.Origin}
	}

	return Result[U]{Payload: fn(r.Payload), Status: r.Status, Origin: r.Origin}
}

// MarshalJSON flattens the payload object and appends the "_status" and
// "_origin" fields. Payloads that do not encode as a JSON object are placed
// under "data".
func (r Result[T]) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(r.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode payload")
	}

	var e jx.Encoder
	e.ObjStart()
	if jx.DecodeBytes(raw).Next() == jx.Object {
		if err := jx.DecodeBytes(raw).ObjBytes(func(d *jx.Decoder, key []byte) error {
			v, err := d.Raw()
			if err != nil {
				return errors.Wrapf(err, "read field %q", key)
			}
			e.FieldStart(string(key))
			e.Raw(v)

			return nil
		}); err != nil {
			return nil, errors.Wrap(err, "copy payload fields")
		}
	} else {
		e.FieldStart(dataField)
		e.Raw(raw)
	}
	e.FieldStart(statusField)
	e.Str(string(r.Status))
	e.FieldStart(originField)
	e.Str(string(r.Origin))
	e.ObjEnd()

	return e.Bytes(), nil
}

// UnmarshalJSON reverses MarshalJSON. The tag fields are read from the top
// level object; the payload is decoded from the object itself, or from "data"
// when the object does not decode into T.
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var (
		status Status
		origin Origin
		data   jx.Raw
	)
	if err := jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case statusField:
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode status")
			}
			status = Status(s)
		case originField:
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode origin")
			}
			origin = Origin(s)
		case dataField:
			v, err := d.Raw()
			if err != nil {
				return errors.Wrap(err, "decode data")
			}
			data = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode result")
	}

	var payload T
	if err := json.Unmarshal(b, &payload); err != nil {
		if data == nil {
			return errors.Wrap(err, "decode payload")
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return errors.Wrap(err, "decode payload data")
		}
	}

	*r = Result[T]{Payload: payload, Status: status, Origin: origin}

	return nil
}
