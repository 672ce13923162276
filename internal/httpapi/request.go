package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/zxc72608/bigquery/internal/filter"
)

// typeKey names the entity in a query payload.
const typeKey = "type"

// queryRequest is a decoded POST /api/query payload.
type queryRequest struct {
	Type    string
	Filters map[string]string
}

// decodeQueryRequest reads the payload. Filter values may be JSON strings or
// numbers; numbers keep their literal text. null and "" mean absent.
func decodeQueryRequest(body io.Reader) (queryRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return queryRequest{}, fmt.Errorf("invalid JSON body: %w", err)
	}
	if raw == nil {
		return queryRequest{}, fmt.Errorf("invalid JSON body: expected an object")
	}

	req := queryRequest{Filters: make(map[string]string)}

	if msg, ok := raw[typeKey]; ok {
		t, err := scalarText(msg)
		if err != nil {
			return queryRequest{}, fmt.Errorf("%s: %w", typeKey, err)
		}
		req.Type = t
	}

	for _, key := range filter.Keys() {
		msg, ok := raw[key]
		if !ok {
			continue
		}
		v, err := scalarText(msg)
		if err != nil {
			return queryRequest{}, fmt.Errorf("%s: %w", key, err)
		}
		if v != "" {
			req.Filters[key] = v
		}
	}

	return req, nil
}

// scalarText returns the text of a JSON string or number, or "" for null.
func scalarText(msg json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	default:
		return "", fmt.Errorf("must be a string")
	}
}
