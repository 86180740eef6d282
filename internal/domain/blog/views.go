// Package blog holds the view counter model for published posts.
package blog

import (
	"fmt"
	"regexp"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

// MaxSlugLength caps slug size so arbitrary paths cannot grow the counter set.
const MaxSlugLength = 128

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ViewCount is the number of times a post has been viewed.
type ViewCount struct {
	Slug  string
	Count int64
}

// ValidateSlug checks that slug is a lowercase, dash-separated identifier.
func ValidateSlug(slug string) error {
	switch {
	case slug == "":
		return domain.Invalid("slug", domain.MsgRequired)
	case len(slug) > MaxSlugLength:
		return domain.Invalid("slug", fmt.Sprintf("must be at most %d characters", MaxSlugLength))
	case !slugPattern.MatchString(slug):
		return domain.Invalid("slug", "must contain only lowercase letters, digits and single dashes")
	}
	return nil
}

// TotalViews sums the counts across all posts.
func TotalViews(counts []ViewCount) int64 {
	var total int64
	for _, c := range counts {
		total += c.Count
	}
	return total
}
