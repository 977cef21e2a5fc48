package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

// Kind classifies a failed backend call.
type Kind string

const (
	KindTransport  Kind = "transport"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindServer     Kind = "server"
	KindClient     Kind = "client"
)

// Error is the only error type returned by Client operations. Message is meant for
// display as-is; Status is 0 when no HTTP response was received.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// IsNotFound reports whether err is a normalized 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

type decodeError struct{ err error }

func (d *decodeError) Error() string { return "respuesta inválida del servidor: " + d.err.Error() }

func (d *decodeError) Unwrap() error { return d.err }

// normalize is the single classifier every operation funnels through. Either status is
// non-zero (the backend answered with a non-2xx) or cause is set (no usable response).
func (c *Client) normalize(method, rawURL string, status int, body []byte, cause error) error {
	e := &Error{Status: status, cause: cause}

	switch {
	case status == 0 && isTransportFailure(cause):
		e.Kind = KindTransport
		e.Message = fmt.Sprintf("No se puede conectar al servidor. ¿Está el backend corriendo en %s?", c.baseURL)
	case status == 0:
		e.Kind = KindClient
		e.Message = "Error: " + cause.Error()
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
		e.Message = "Recurso no encontrado"
	case status == http.StatusUnprocessableEntity:
		e.Kind = KindValidation
		e.Message = "Error de validación: " + serializeBody(body)
	default:
		e.Kind = KindServer
		detail := detailOf(body)
		if detail == "" {
			detail = fmt.Sprintf("Http failure response for %s: %d %s", rawURL, status, http.StatusText(status))
		}
		e.Message = fmt.Sprintf("Error %d: %s", status, detail)
	}

	entry := c.log.WithFields(logrus.Fields{
		"method": method,
		"url":    rawURL,
		"status": status,
		"kind":   e.Kind,
	})
	if cause != nil {
		entry = entry.WithError(cause)
	}
	entry.Error("API Error: " + e.Message)

	return e
}

// isTransportFailure separates "the backend could not be reached" from failures that
// happened on our side of the wire (encoding, decoding, cancelled contexts).
func isTransportFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// serializeBody renders a validation body the way it should appear in a message:
// compact JSON when the backend sent JSON, a quoted string otherwise.
func serializeBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "null"
	}
	if json.Valid(trimmed) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err == nil {
			return buf.String()
		}
	}
	quoted, _ := json.Marshal(string(trimmed))
	return string(quoted)
}

// detailOf extracts the backend's "detail" field. Non-string details are compacted.
func detailOf(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	raw := bytes.TrimSpace(envelope.Detail)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return ""
	}
	return buf.String()
}
