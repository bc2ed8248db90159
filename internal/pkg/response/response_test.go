package response

import (
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestDefaultMessageForStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		expect string
	}{
		{status: fiber.StatusOK, expect: MessageOK},
		{status: fiber.StatusBadRequest, expect: MessageBadRequest},
		{status: fiber.StatusNotFound, expect: MessageNotFound},
		{status: fiber.StatusUnprocessableEntity, expect: MessageUnprocessableEntity},
		{status: fiber.StatusServiceUnavailable, expect: MessageInternalServerError},
		{status: fiber.StatusTeapot, expect: MessageError},
	}

	for _, tt := range tests {
		if got := DefaultMessageForStatus(tt.status); got != tt.expect {
			t.Fatalf("status %d: expected %q, got %q", tt.status, tt.expect, got)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	if got := normalizeStatus(42); got != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for out of range status, got %d", got)
	}
	if got := normalizeStatus(fiber.StatusCreated); got != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", got)
	}
}
