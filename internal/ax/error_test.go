package ax

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Result(t *testing.T) {
	if err := Success.Result(); err != nil {
		t.Fatalf("Success.Result() = %v, want nil", err)
	}
	for st := range errorNames {
		if st == Success {
			continue
		}
		err := st.Result()
		if err == nil {
			t.Errorf("%d.Result() = nil, want error", st)
			continue
		}
		var got Error
		if !errors.As(err, &got) || got != st {
			t.Errorf("%d.Result() = %v, want the same status", st, err)
		}
	}
}

func TestError_ResultUnknownStatus(t *testing.T) {
	err := Error(-1).Result()
	if !errors.Is(err, Error(-1)) {
		t.Fatalf("unknown status dropped: %v", err)
	}
	if !strings.Contains(err.Error(), "-1") {
		t.Errorf("message %q should carry the raw status", err.Error())
	}
}

func TestError_Message(t *testing.T) {
	if got := ErrAttributeUnsupported.Error(); got != "ax: attribute unsupported" {
		t.Errorf("Error() = %q", got)
	}
}

func TestTypeMismatchError(t *testing.T) {
	err := error(&TypeMismatchError{Want: KindString, Got: KindNumber})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Error("TypeMismatchError should wrap ErrTypeMismatch")
	}
	if got := err.Error(); got != "ax: value is number, not string" {
		t.Errorf("Error() = %q", got)
	}
}
