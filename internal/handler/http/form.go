package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
)

const maxFormMemory = 1 << 20

var errUnsupportedBody = errors.New("unsupported request body")

// formFields holds the body fields of a request. A key is present when the
// client sent it, even with an empty value.
type formFields map[string]string

func (f formFields) get(key string) string {
	return f[key]
}

// lookup returns a pointer to the value of key, or nil when key is absent.
func (f formFields) lookup(key string) *string {
	value, ok := f[key]
	if !ok {
		return nil
	}
	return &value
}

// readForm reads a url-encoded, multipart or JSON body. A JSON null is
// treated as an absent field; other non-string JSON values are kept in
// their literal form, so {"locked": true} reads as "true".
func readForm(r *http.Request) (formFields, error) {
	fields := make(formFields)
	if r.Body == nil || r.ContentLength == 0 {
		return fields, nil
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUnsupportedBody, err)
	}

	switch mediaType {
	case "application/json":
		var raw map[string]json.RawMessage
		if err = json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", errUnsupportedBody, err)
		}
		for key, value := range raw {
			if string(value) == "null" {
				continue
			}
			var s string
			if json.Unmarshal(value, &s) == nil {
				fields[key] = s
				continue
			}
			fields[key] = string(value)
		}

	case "multipart/form-data":
		if err = r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", errUnsupportedBody, err)
		}
		for key, values := range r.MultipartForm.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}

	case "application/x-www-form-urlencoded":
		if err = r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", errUnsupportedBody, err)
		}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}

	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedBody, mediaType)
	}

	return fields, nil
}
