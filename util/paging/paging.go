package paging

// Offset converts a from/size pair into a row offset the way the listing
// endpoints define it: the page holding `from` is page from/size, so the
// offset snaps down to a page boundary. A `from` that is not a multiple of
// `size` therefore starts at the beginning of its page, not at `from`.
func Offset(from, size int) int {
	return from / size * size
}
