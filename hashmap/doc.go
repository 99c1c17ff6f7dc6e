// Package hashmap provides insertion-ordered hash containers parametrized by
// a compare.Equality instead of Go's built-in ==.
//
// Map and Set keep the order in which keys were first inserted; updating an
// existing key keeps its position. They are not safe for concurrent use.
//
//	m := hashmap.New[string, int](compare.FoldStrings())
//	m.Set("Go", 1)
//	m.Get("GO") // 1, true
package hashmap
