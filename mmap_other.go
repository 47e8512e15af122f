//go:build !unix

package kioku

// Anonymous mappings are unavailable here; fall back to heap backing.
func newMmapSource() blockSource { return heapSource{} }
