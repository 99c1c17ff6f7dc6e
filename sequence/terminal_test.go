package sequence

import (
	stderrors "errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/seqkit/compare"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/hashmap"
)

func TestAggregate(t *testing.T) {
	sum, err := TryApply(Of(1, 2, 3, 4), Aggregate(func(acc, v int) int { return acc + v }))
	if err != nil || sum != 10 {
		t.Errorf("Aggregate = %d, %v; want 10, nil", sum, err)
	}

	_, err = TryApply(Empty[int](), Aggregate(func(acc, v int) int { return acc + v }))
	if !stderrors.Is(err, errors.ErrEmptySequence) {
		t.Errorf("expected EMPTY_SEQUENCE, got %v", err)
	}

	joined := Apply(Of("a", "b", "c"), AggregateSeed(">", func(acc string, v string) string { return acc + v }))
	if joined != ">abc" {
		t.Errorf("AggregateSeed = %q", joined)
	}
	if got := Apply(Empty[string](), AggregateSeed(7, func(acc int, v string) int { return acc + len(v) })); got != 7 {
		t.Errorf("AggregateSeed over empty = %d, want the seed", got)
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name     string
		src      Wrapper[int]
		min, max int
	}{
		{"slice", Of(4, -2, 9, 3), -2, 9},
		{"stream", streamOf(4, -2, 9, 3), -2, 9},
		{"single", Of(5), 5, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, err := TryApply(tc.src, Min[int]())
			if err != nil || lo != tc.min {
				t.Errorf("Min = %d, %v; want %d", lo, err, tc.min)
			}
			hi, err := TryApply(tc.src, Max[int]())
			if err != nil || hi != tc.max {
				t.Errorf("Max = %d, %v; want %d", hi, err, tc.max)
			}
		})
	}
}

func TestMinMax_Empty(t *testing.T) {
	for name, step := range map[string]TryStep[int, int]{
		"min":   Min[int](),
		"max":   Max[int](),
		"minBy": MinBy(func(x int) int { return x }),
		"maxBy": MaxBy(func(x int) int { return x }),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := TryApply(Empty[int](), step)
			if !errors.HasCode(err, errors.ErrCodeEmptySequence) {
				t.Errorf("expected EMPTY_SEQUENCE, got %v", err)
			}
		})
	}
}

func TestMinByMaxBy_FirstWinsTies(t *testing.T) {
	people := FromSlice([]person{{"ann", 30, 0}, {"bob", 25, 1}, {"cid", 25, 2}, {"dan", 30, 3}})
	age := func(p person) int { return p.age }

	youngest, err := TryApply(people, MinBy(age))
	if err != nil || youngest.id != 1 {
		t.Errorf("MinBy = %+v, %v; want id 1", youngest, err)
	}
	oldest, err := TryApply(people, MaxBy(age))
	if err != nil || oldest.id != 0 {
		t.Errorf("MaxBy = %+v, %v; want id 0", oldest, err)
	}
	longest, err := TryApply(Of("bb", "a", "cc"), MaxBy(func(s string) int { return len(s) }, compare.Ordered[int]()))
	if err != nil || longest != "bb" {
		t.Errorf("MaxBy with comparer = %q, %v", longest, err)
	}
}

func TestMinMax_BypassesOrdering(t *testing.T) {
	sortKeyCalls := 0
	src := Of(7, 3, 9, 3, 1)
	ordered := src.Pipe(
		OrderBy(func(x int) int {
			sortKeyCalls++
			return -x
		}),
		ThenBy(func(x int) int { return x }),
	)
	for name, step := range map[string]TryStep[int, int]{"min": Min[int](), "max": Max[int]()} {
		want, _ := TryApply(src, step)
		got, err := TryApply(ordered, step)
		if err != nil || got != want {
			t.Errorf("%s over ordered = %d, %v; want %d", name, got, err, want)
		}
	}
	if sortKeyCalls != 0 {
		t.Errorf("expected min/max to skip sorting, key selector ran %d times", sortKeyCalls)
	}
	if got := unordered[int](ordered); got != src.Unwrap() {
		t.Errorf("unordered unwrap = %T, want the pre-sort source", got)
	}
}

func TestFirstLastElementAt(t *testing.T) {
	sources := map[string]Wrapper[int]{
		"slice":  Of(10, 20, 30, 40),
		"stream": streamOf(10, 20, 30, 40),
		"window": streamOf(0, 10, 20, 30, 40, 50).Pipe(Skip[int](1), Take[int](4)),
	}
	tests := []struct {
		name string
		step TryStep[int, int]
		want int
		code errors.ErrorCode
	}{
		{"first", First[int](), 10, ""},
		{"last", Last[int](), 40, ""},
		{"index 2", ElementAt[int](2), 30, ""},
		{"index -1", ElementAt[int](-1), 40, ""},
		{"index -4", ElementAt[int](-4), 10, ""},
		{"index 4", ElementAt[int](4), 0, errors.ErrCodeOutOfRange},
		{"index -5", ElementAt[int](-5), 0, errors.ErrCodeOutOfRange},
		{"min int", ElementAt[int](math.MinInt), 0, errors.ErrCodeOutOfRange},
		{"max int", ElementAt[int](math.MaxInt), 0, errors.ErrCodeOutOfRange},
	}
	for name, src := range sources {
		for _, tc := range tests {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got, err := TryApply(src, tc.step)
				if tc.code != "" {
					if !errors.HasCode(err, tc.code) {
						t.Errorf("expected %s, got %d, %v", tc.code, got, err)
					}
					return
				}
				if err != nil || got != tc.want {
					t.Errorf("got %d, %v; want %d", got, err, tc.want)
				}
			})
		}
	}
}

func TestFirstLast_Empty(t *testing.T) {
	for _, w := range []Wrapper[string]{Empty[string](), streamOf[string](), Apply(Of("a"), Skip[string](1))} {
		if _, err := TryApply(w, First[string]()); !stderrors.Is(err, errors.ErrEmptySequence) {
			t.Errorf("First: expected EMPTY_SEQUENCE, got %v", err)
		}
		if _, err := TryApply(w, Last[string]()); !stderrors.Is(err, errors.ErrEmptySequence) {
			t.Errorf("Last: expected EMPTY_SEQUENCE, got %v", err)
		}
	}
}

func TestOrDefault(t *testing.T) {
	w := streamOf("x", "y")
	if got := Apply(w, FirstOrDefault("none")); got != "x" {
		t.Errorf("FirstOrDefault = %q", got)
	}
	if got := Apply(Empty[string](), FirstOrDefault("none")); got != "none" {
		t.Errorf("FirstOrDefault over empty = %q", got)
	}
	if got := Apply(w, LastOrDefault("none")); got != "y" {
		t.Errorf("LastOrDefault = %q", got)
	}
	if got := Apply(Empty[string](), LastOrDefault("none")); got != "none" {
		t.Errorf("LastOrDefault over empty = %q", got)
	}
	if got := Apply(w, ElementAtOrDefault(-3, "none")); got != "none" {
		t.Errorf("ElementAtOrDefault(-3) = %q", got)
	}
	if got := Apply(Of("x", "y"), ElementAtOrDefault(1, "none")); got != "y" {
		t.Errorf("ElementAtOrDefault(1) = %q", got)
	}
	if got := Apply(w, ElementAtOrDefault(math.MinInt, "none")); got != "none" {
		t.Errorf("ElementAtOrDefault(MinInt) = %q", got)
	}
}

func TestAnyAll_ShortCircuit(t *testing.T) {
	pulled := 0
	src := FromSeq(func(yield func(int) bool) {
		for _, v := range []int{1, 2, 3, 4, 5} {
			pulled++
			if !yield(v) {
				return
			}
		}
	})

	if !Apply(src, AnyMatch(func(x int) bool { return x == 2 })) || pulled != 2 {
		t.Errorf("AnyMatch pulled %d, want 2", pulled)
	}
	pulled = 0
	if Apply(src, All(func(x int) bool { return x < 3 })) || pulled != 3 {
		t.Errorf("All pulled %d, want 3", pulled)
	}
	pulled = 0
	if !Apply(src, Any[int]()) || pulled != 1 {
		t.Errorf("Any pulled %d, want 1", pulled)
	}
	if Apply(Empty[int](), Any[int]()) {
		t.Error("expected Any to be false for an empty sequence")
	}
	if !Apply(Empty[int](), All(func(int) bool { return false })) {
		t.Error("expected All to be true for an empty sequence")
	}
	if Apply(src, AnyMatch(func(x int) bool { return x > 9 })) {
		t.Error("expected no match")
	}
}

func TestForEach(t *testing.T) {
	for name, w := range map[string]Wrapper[string]{
		"slice":  Of("a", "b", "c"),
		"stream": streamOf("a", "b", "c"),
	} {
		t.Run(name, func(t *testing.T) {
			var b strings.Builder
			var idx []int
			n := Apply(w, ForEach(func(s string, i int) {
				b.WriteString(s)
				idx = append(idx, i)
			}))
			if n != 3 || b.String() != "abc" || !slices.Equal(idx, []int{0, 1, 2}) {
				t.Errorf("ForEach visited %d: %q %v", n, b.String(), idx)
			}
		})
	}
}

func TestFromIterator_OneShot(t *testing.T) {
	w := FromIterator[int](&sliceIter[int]{items: []int{1, 2, 3}})
	if got := toArray(w); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("first pass = %v", got)
	}
	if got := toArray(w); len(got) != 0 {
		t.Errorf("second pass over a one-shot source = %v, want nothing", got)
	}
}

func TestCollectors(t *testing.T) {
	words := Of("apple", "bob", "avocado", "cat", "bee")
	initial := func(s string) byte { return s[0] }

	m := Apply(words, ToMap(initial, func(s string) int { return len(s) }))
	if len(m) != 3 || m['a'] != 7 || m['b'] != 3 {
		t.Errorf("ToMap = %v (last write must win)", m)
	}

	multi := Apply(words, ToMultiMap(initial, func(s string) string { return s }))
	if !slices.Equal(multi['a'], []string{"apple", "avocado"}) || !slices.Equal(multi['b'], []string{"bob", "bee"}) {
		t.Errorf("ToMultiMap = %v", multi)
	}

	set := Apply(Of(1, 2, 1, 3), ToSet[int]())
	if len(set) != 3 {
		t.Errorf("ToSet = %v", set)
	}

	arr := toArray(Empty[int]())
	if arr == nil || len(arr) != 0 {
		t.Errorf("ToArray over empty = %#v, want an empty slice", arr)
	}
	backing := []int{1, 2}
	copied := toArray(FromSlice(backing))
	copied[0] = 99
	if backing[0] != 1 {
		t.Error("ToArray must not alias the source slice")
	}
}

func TestHashCollectors(t *testing.T) {
	hm := Apply(Of("Go", "Rust", "GO"), ToHashMap(
		func(s string) string { return s },
		func(s string) int { return len(s) },
		compare.FoldStrings(),
	))
	if hm.Len() != 2 {
		t.Fatalf("expected folded keys to collide, got %d entries", hm.Len())
	}
	keys := slices.Collect(hm.Keys())
	if !slices.Equal(keys, []string{"Go", "Rust"}) {
		t.Errorf("keys = %v, want insertion order", keys)
	}

	hs := Apply(Of(3, 1, 3, 2), ToHashSet[int]())
	if got := slices.Collect(hs.All()); !slices.Equal(got, []int{3, 1, 2}) {
		t.Errorf("ToHashSet = %v", got)
	}

	round := toArray(FromHashSet(hs))
	if !slices.Equal(round, []int{3, 1, 2}) {
		t.Errorf("FromHashSet = %v", round)
	}
	pairs := toArray(FromHashMap(hm))
	if len(pairs) != 2 || pairs[0] != (Pair[string, int]{"Go", 2}) {
		t.Errorf("FromHashMap = %v", pairs)
	}
}

func TestSources(t *testing.T) {
	m := Apply(FromMap(map[string]int{"a": 1, "b": 2}), Count[KeyValue[string, int]]())
	if m != 2 {
		t.Errorf("FromMap count = %d", m)
	}
	set := FromSet(map[int]struct{}{4: {}, 5: {}})
	if n, ok := DirectCount[int](set); !ok || n != 2 {
		t.Errorf("FromSet DirectCount = %d, %v", n, ok)
	}
	hs := hashmap.NewSet[int]()
	hs.Add(1)
	if n, ok := DirectCount[int](FromHashSet(hs)); !ok || n != 1 {
		t.Errorf("FromHashSet DirectCount = %d, %v", n, ok)
	}
	if Wrap[int](nil).variant() != "source" || bruteCount(Wrap[int](nil)) != 0 {
		t.Error("Wrap(nil) must be empty")
	}
	w := Of(1)
	if Wrap[int](w) != w {
		t.Error("Wrap must return an existing wrapper unchanged")
	}
	raw := w.Unwrap()
	if w.Unwrap() != raw {
		t.Error("Unwrap must be referentially stable")
	}
}

func TestPipeAndTryApply(t *testing.T) {
	w := Of(5, 3, 8).Pipe()
	if got := toArray(w); !slices.Equal(got, []int{5, 3, 8}) {
		t.Errorf("empty Pipe changed the sequence: %v", got)
	}
	got, err := TryApply(w.Pipe(Order[int](), Reverse[int]()), First[int]())
	if err != nil || got != 8 {
		t.Errorf("got %d, %v; want 8", got, err)
	}
}
