package systems

import (
	"errors"
	"testing"
)

func TestOpenExternalWithoutLink(t *testing.T) {
	if err := OpenExternal(""); !errors.Is(err, ErrNoLink) {
		t.Fatalf("OpenExternal(\"\") = %v, want ErrNoLink", err)
	}
}
