package fetch

import (
	"io"
	"strings"

	"github.com/NielsdaWheelz/aocday/internal/errors"
)

// ReadCredential reads all of r as the session token.
//
// Trailing line terminators are dropped, the way `$(cat)` in a shell would;
// a newline cannot be sent in a header value anyway. Every other byte,
// including surrounding spaces, is kept.
func ReadCredential(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(errors.ECredentialRead, "failed to read session from stdin", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
