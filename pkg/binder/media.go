package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Any tries JSON for application/json bodies and Form otherwise.
func Any() func(r *http.Request, v any) error {
	jsonBinder, formBinder := JSON(), Form()
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}
		if mediaType == "application/json" {
			return jsonBinder(r, v)
		}
		return formBinder(r, v)
	}
}

func mediaTypeOf(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mediaType, nil
}
