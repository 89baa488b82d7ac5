package serr

import (
	"errors"
	"fmt"
	"testing"
)

func TestE_KindMatching(t *testing.T) {
	err := E(ErrInvalidInput, "augment", "reserved label %q in use", "__entry__")

	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("errors.Is(err, ErrInvalidInput) = false")
	}
	if errors.Is(err, ErrInvariant) {
		t.Errorf("err matched the wrong kind")
	}
	if got := err.Error(); got != `augment: reserved label "__entry__" in use` {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := Wrap(ErrBadFormat, "decode", cause, "graph %s", "g.json")

	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("kind not matched through wrap")
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause not matched through wrap")
	}
	if got := err.Error(); got != "decode: graph g.json: unexpected EOF" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{E(ErrInvalidInput, "augment", "empty"), "INVALID_INPUT"},
		{E(ErrUnsupported, "", "no source"), "UNSUPPORTED"},
		{E(ErrInvariant, "classify", "arc unclassified"), "INTERNAL_INVARIANT"},
		{Wrap(ErrBadFormat, "decode", errors.New("eof"), "body"), "INVALID_FORMAT"},
		{E(ErrNotFound, "archive", "missing"), "NOT_FOUND"},
		{errors.New("plain"), ""},
	}
	for _, tt := range tests {
		if got := CodeOf(tt.err); got != tt.want {
			t.Errorf("CodeOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestUserMessage_HidesCause(t *testing.T) {
	err := Wrap(ErrBadFormat, "decode", errors.New("unexpected EOF at byte 412"), "graph body")
	if got := UserMessage(err); got != "decode: graph body" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
