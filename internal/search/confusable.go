package search

import "github.com/mtibben/confusables"

// SkeletonConfusable is the default visual-confusability predicate: two
// characters are confusable when their UTS#39 skeletons coincide.
// Identity is trivially confusable, so this subsumes exact character
// matches.
func SkeletonConfusable(a, b rune) bool {
	if a == b {
		return true
	}
	return confusables.Skeleton(string(a)) == confusables.Skeleton(string(b))
}
