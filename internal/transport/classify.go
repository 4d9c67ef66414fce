// Package transport turns low-level request failures into schemagen
// transport errors.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/spetersoncode/schemagen"
)

// Classify wraps err in a *schemagen.TransportError describing why the
// request never produced a usable answer. Errors that already carry a
// schemagen classification are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *schemagen.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	var te *schemagen.TransportError
	if errors.As(err, &te) {
		return err
	}

	return schemagen.NewTransportError(KindOf(err), err)
}

// KindOf guesses the transport failure kind of err.
func KindOf(err error) schemagen.TransportKind {
	switch {
	case err == nil:
		return schemagen.TransportUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return schemagen.TransportTimeout
	case errors.Is(err, context.Canceled):
		return schemagen.TransportCanceled
	case isTimeout(err):
		return schemagen.TransportTimeout
	case isMalformed(err):
		return schemagen.TransportMalformed
	case isConnection(err):
		return schemagen.TransportConnection
	}
	return schemagen.TransportUnknown
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return errors.Is(err, syscall.ETIMEDOUT)
}

func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return true
	}
	return errors.Is(err, schemagen.ErrEmptyResponse)
}

func isConnection(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET, syscall.ECONNREFUSED, syscall.ECONNABORTED:
			return true
		}
	}

	// Fallback on the error text for SDKs that flatten the cause.
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{"connection reset", "connection refused", "no such host", "eof"} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
