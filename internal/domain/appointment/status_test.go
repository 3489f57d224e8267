package appointment

import (
	"testing"

	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusPending, StatusCompleted, false},
		{StatusInProgress, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusPending, StatusDeleted, true},
		{StatusInProgress, StatusDeleted, true},
		{StatusCompleted, StatusDeleted, true},
		{StatusDeleted, StatusPending, false},
		{StatusDeleted, StatusInProgress, false},
		{StatusDeleted, StatusCompleted, false},
		{StatusPending, StatusPending, true},
		{StatusCompleted, StatusCompleted, true},
		{StatusDeleted, StatusDeleted, true},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanClaim(t *testing.T) {
	if err := CanClaim(StatusPending); err != nil {
		t.Fatalf("claiming a pending appointment should be allowed, got %v", err)
	}

	for _, s := range []Status{StatusInProgress, StatusCompleted, StatusDeleted} {
		err := CanClaim(s)
		if err == nil {
			t.Fatalf("claiming a %q appointment should be rejected", s)
		}
		if httperr.BusinessCode(err) != "invalid_transition" {
			t.Errorf("CanClaim(%q) code = %q, want invalid_transition", s, httperr.BusinessCode(err))
		}
	}
}

func TestApplyDomicileStatus(t *testing.T) {
	ap := &models.AppointmentDomicile{Status: string(StatusPending)}

	if err := ApplyDomicileStatus(ap, StatusInProgress); err != nil {
		t.Fatalf("pending -> in progress: %v", err)
	}
	if ap.Status != string(StatusInProgress) {
		t.Fatalf("status not applied, got %q", ap.Status)
	}

	if err := ApplyDomicileStatus(ap, StatusPending); err == nil {
		t.Fatal("backward move in progress -> pending should fail")
	}

	if err := ApplyDomicileStatus(ap, "Scheduled"); err == nil {
		t.Fatal("unknown status should fail")
	} else if httperr.BusinessCode(err) != "invalid_status" {
		t.Errorf("code = %q, want invalid_status", httperr.BusinessCode(err))
	}

	// the failed applies must not have mutated the appointment
	if ap.Status != string(StatusInProgress) {
		t.Fatalf("status mutated by rejected transition, got %q", ap.Status)
	}
}

func TestApplyLocationStatusDeletedIsTerminal(t *testing.T) {
	ap := &models.AppointmentLocation{Status: string(StatusDeleted)}

	for _, to := range []Status{StatusPending, StatusInProgress, StatusCompleted} {
		if err := ApplyLocationStatus(ap, to); err == nil {
			t.Errorf("deleted -> %q should be rejected", to)
		}
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"e", KindDomicile, true},
		{"i", KindLocation, true},
		{"domicile", KindDomicile, true},
		{"location", KindLocation, true},
		{"x", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseKind(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
