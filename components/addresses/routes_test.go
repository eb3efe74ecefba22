package addresses

import (
	"net/http"
	"testing"
)

func TestMountPath(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"", "/api/addresses"},
		{"/", "/api/addresses"},
		{"/quote", "/quote/api/addresses"},
		{"quote/", "/quote/api/addresses"},
	}
	for _, tc := range tests {
		if got := MountPath(tc.base); got != tc.want {
			t.Fatalf("MountPath(%q) = %q, want %q", tc.base, got, tc.want)
		}
	}
}

func TestRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/quote", WithProvider(staticProvider()))
	if err != nil {
		t.Fatalf("RegisterRoutes() = %v", err)
	}
	if pattern != "/quote/api/addresses" {
		t.Fatalf("pattern = %q", pattern)
	}

	if _, err := RegisterRoutes(nil, "/quote"); err == nil {
		t.Fatal("expected error for nil mux")
	}
}
