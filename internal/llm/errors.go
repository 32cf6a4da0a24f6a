package llm

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrNoCredential indicates no API key is configured for any provider.
	ErrNoCredential = errors.New("no api credential configured")

	// ErrRevokedCredential indicates the provider rejected the key as
	// leaked, revoked, or disabled. Remediation differs from a generic
	// failure: the key must be replaced, retrying is pointless.
	ErrRevokedCredential = errors.New("api credential revoked or reported leaked")

	// ErrEmptyResponse indicates the provider answered with no text.
	ErrEmptyResponse = errors.New("provider returned empty output")

	// ErrUnavailable indicates the provider could not be reached.
	ErrUnavailable = errors.New("generation service unavailable")
)

// Classify maps an arbitrary adapter error onto the error taxonomy. Every
// catch site classifies before deciding on fallback; nothing downstream
// inspects provider-specific shapes.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNoCredential),
		errors.Is(err, ErrRevokedCredential),
		errors.Is(err, ErrEmptyResponse),
		errors.Is(err, ErrUnavailable):
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"leaked", "revoked", "deactivated", "key has been disabled"} {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrRevokedCredential, err)
		}
	}
	return err
}

// Remediation returns the human-actionable message for a classified error.
func Remediation(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRevokedCredential):
		return "Your API key was reported as leaked or revoked. Create a new key with your provider and update api_key in ~/.daybyday.yaml (or the GEMINI_API_KEY / ANTHROPIC_API_KEY environment variable)."
	case errors.Is(err, ErrNoCredential):
		return "No API key is configured, so a scripted plan was used. Run 'daybyday setup' or set GEMINI_API_KEY / ANTHROPIC_API_KEY to enable AI generation."
	case errors.Is(err, ErrEmptyResponse):
		return "The generation service returned nothing usable; a scripted plan was used instead."
	case errors.Is(err, ErrUnavailable):
		return "The generation service could not be reached; a scripted plan was used instead."
	default:
		return "Generation failed (" + err.Error() + "); a scripted plan was used instead."
	}
}
