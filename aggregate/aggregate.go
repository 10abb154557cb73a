// Package aggregate merges per-provider source lists into one ranked list.
package aggregate

import (
	"github.com/anisan-cli/anistream/source"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Aggregate concatenates perProvider in order, keeps the first source for every URL and
// orders the result by descending quality rank. Sources of equal rank keep their relative order.
func Aggregate(perProvider [][]*source.Video) []*source.Video {
	all := lo.Filter(lo.Flatten(perProvider), func(v *source.Video, _ int) bool {
		return v != nil && v.URL != ""
	})

	unique := lo.UniqBy(all, func(v *source.Video) string {
		return v.URL
	})

	slices.SortStableFunc(unique, func(a, b *source.Video) int {
		return b.Rank() - a.Rank()
	})

	return unique
}
