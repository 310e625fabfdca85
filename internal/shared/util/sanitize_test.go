package util

import "testing"

func TestCleanObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "catalog.yaml", want: "catalog.yaml"},
		{name: "nested", in: "reference/catalog.yaml", want: "reference/catalog.yaml"},
		{name: "leading slash", in: "/reference//catalog.yaml", want: "reference/catalog.yaml"},
		{name: "backslashes", in: `reference\catalog.yaml`, want: "reference/catalog.yaml"},
		{name: "traversal", in: "../etc/passwd", wantErr: true},
		{name: "empty", in: "  ", wantErr: true},
		{name: "only slashes", in: "///", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanObjectKey(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanObjectKey(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("CleanObjectKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
