package checker

import "testing"

func TestFindCaseInsensitive(t *testing.T) {
	headers := HeaderMap{"x-frame-options": "DENY"}

	value, ok := headers.Find("X-Frame-Options")
	if !ok {
		t.Fatal("expected lookup to match lowercase stored key")
	}
	if value != "DENY" {
		t.Errorf("expected DENY, got %q", value)
	}
}

func TestFindVariants(t *testing.T) {
	tests := []struct {
		name    string
		headers HeaderMap
		lookup  string
		want    string
		wantOK  bool
	}{
		{name: "exact key", headers: HeaderMap{"Content-Security-Policy": "default-src 'self'"}, lookup: "Content-Security-Policy", want: "default-src 'self'", wantOK: true},
		{name: "canonical form", headers: HeaderMap{"Strict-Transport-Security": "max-age=1"}, lookup: "strict-transport-security", want: "max-age=1", wantOK: true},
		{name: "mixed case stored", headers: HeaderMap{"ReFeRrEr-PoLiCy": "no-referrer"}, lookup: "Referrer-Policy", want: "no-referrer", wantOK: true},
		{name: "absent", headers: HeaderMap{"Server": "nginx"}, lookup: "X-Frame-Options", wantOK: false},
		{name: "nil map", headers: nil, lookup: "X-Frame-Options", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.headers.Find(tt.lookup)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.lookup, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.lookup, got, tt.want)
			}
		})
	}
}

func TestFindDeterministicOnCollision(t *testing.T) {
	headers := HeaderMap{
		"x-frame-options": "DENY",
		"X-FRAME-OPTIONS": "SAMEORIGIN",
	}

	first, ok := headers.Find("x-frame-options-MISSING")
	if ok {
		t.Fatalf("unexpected match %q", first)
	}

	// Colliding keys must resolve identically on every call.
	want, _ := headers.Find("X-Frame-Options")
	for i := 0; i < 20; i++ {
		got, ok := headers.Find("X-Frame-Options")
		if !ok || got != want {
			t.Fatalf("lookup %d returned %q (ok=%v), want stable %q", i, got, ok, want)
		}
	}
}
