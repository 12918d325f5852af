package models

import "testing"

func TestIsRelativeFileURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{url: "/uploads/a.pdf", want: true},
		{url: "/uploads/", want: true},
		{url: "http://localhost:3001/uploads/a.pdf", want: false},
		{url: "https://cdn.estatefox.test/b.png", want: false},
		{url: "", want: false},
		{url: "/upload/a.pdf", want: false},
	}

	for _, tt := range tests {
		d := Document{FileURL: tt.url}
		if got := d.IsRelativeFileURL(); got != tt.want {
			t.Fatalf("IsRelativeFileURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestSubscriptionIsTerminal(t *testing.T) {
	for _, status := range []string{SubscriptionStatusCancelled, SubscriptionStatusExpired} {
		s := Subscription{Status: status}
		if !s.IsTerminal() {
			t.Fatalf("expected status %q to be terminal", status)
		}
	}
	for _, status := range []string{SubscriptionStatusPending, SubscriptionStatusActive} {
		s := Subscription{Status: status}
		if s.IsTerminal() {
			t.Fatalf("expected status %q to be non-terminal", status)
		}
	}
}
