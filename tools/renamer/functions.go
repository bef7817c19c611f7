package renamer

import (
	"fmt"
	"math"
	"strings"
)

// BuildNewName composes an index-based file name. The numeric part is
// round(index*indexMul + indexOffset), zero-padded to padWidth (0 or
// negative disables padding). A prefix is joined with "_" unless it
// already ends in "_" or "-"; a postfix is joined with "_" unless it
// starts with one. Surrounding whitespace on prefix and postfix is
// trimmed.
//
//	BuildNewName(1, ".bmp", 4, 1.0, 0, "frame", "")  // "frame_0001.bmp"
func BuildNewName(index int, ext string, padWidth int, indexMul float64, indexOffset int, prefix, postfix string) string {
	computed := int(math.RoundToEven(float64(index)*indexMul + float64(indexOffset)))
	if padWidth < 0 {
		padWidth = 0
	}
	num := fmt.Sprintf("%0*d", padWidth, computed)
	return joinPostfix(joinPrefix(prefix, num), postfix) + ext
}

// BuildKeepName keeps the original stem and wraps it with prefix and
// postfix under the same separator rules.
//
//	BuildKeepName("original_file", ".bmp", "pre_", "_post")  // "pre_original_file_post.bmp"
func BuildKeepName(stem, ext, prefix, postfix string) string {
	return joinPostfix(joinPrefix(prefix, stem), postfix) + ext
}

func joinPrefix(prefix, base string) string {
	px := strings.TrimSpace(prefix)
	if px == "" {
		return base
	}
	if strings.HasSuffix(px, "_") || strings.HasSuffix(px, "-") {
		return px + base
	}
	return px + "_" + base
}

func joinPostfix(base, postfix string) string {
	post := strings.TrimSpace(postfix)
	if post == "" {
		return base
	}
	if strings.HasPrefix(post, "_") || strings.HasPrefix(post, "-") {
		return base + post
	}
	return base + "_" + post
}
