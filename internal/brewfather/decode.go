package brewfather

import (
	"encoding/json"
	"errors"
	"fmt"

	"brewfather-mcp/internal/model"
)

var errMissingID = errors.New("record has no id")

// PageDecoder turns one list page body into its records, in server order.
type PageDecoder[T model.Record] func(body []byte) ([]T, error)

// DecodeList decodes a JSON array of records. Every record must carry a non-empty id,
// since the last one becomes the next page cursor.
func DecodeList[T model.Record](body []byte) ([]T, error) {
	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	for i, r := range records {
		if r.GetID() == "" {
			return nil, fmt.Errorf("item %d: %w", i, errMissingID)
		}
	}
	return records, nil
}

// DecodeOne decodes a single JSON object. Types implementing model.Record must carry an id.
func DecodeOne[T any](body []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if r, ok := any(v).(model.Record); ok && r.GetID() == "" {
		return nil, errMissingID
	}
	return &v, nil
}

// decodeAs wraps decoding failures of a single-object endpoint in a DecodeError.
func decodeAs[T any](endpoint string, body []byte) (*T, error) {
	v, err := DecodeOne[T](body)
	if err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	return v, nil
}
