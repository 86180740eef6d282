package blog

import (
	"errors"
	"strings"
	"testing"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

func TestValidateSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{name: "simple", slug: "hello", wantErr: false},
		{name: "dashed with digits", slug: "rasengan-101", wantErr: false},
		{name: "empty", slug: "", wantErr: true},
		{name: "uppercase", slug: "Hello", wantErr: true},
		{name: "leading dash", slug: "-hello", wantErr: true},
		{name: "double dash", slug: "a--b", wantErr: true},
		{name: "path traversal", slug: "../etc", wantErr: true},
		{name: "too long", slug: strings.Repeat("a", MaxSlugLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateSlug(tt.slug)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("ValidateSlug(%q) = %v, want ErrValidation", tt.slug, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateSlug(%q) = %v, want nil", tt.slug, err)
			}
		})
	}
}

func TestTotalViews(t *testing.T) {
	t.Parallel()

	counts := []ViewCount{{Slug: "a", Count: 3}, {Slug: "b", Count: 0}, {Slug: "c", Count: 39}}

	if got := TotalViews(counts); got != 42 {
		t.Errorf("TotalViews() = %d, want 42", got)
	}
	if got := TotalViews(nil); got != 0 {
		t.Errorf("TotalViews(nil) = %d, want 0", got)
	}
}
