// Package sequence provides a lazy, composable sequence engine.
//
// A Wrapper is an immutable handle over a source or over pending
// transformation state. Operators are factories returning steps; a step
// is applied with Apply (or TryApply for terminals that can fail). No work
// happens until a terminal step pulls values.
//
// Chained operators of the same kind fuse into one Wrapper instead of
// stacking layers: selects share one pass, wheres share one predicate list,
// skip/take collapse into one interval, concatenations stay flat, and a
// second reverse cancels the first.
//
// # Operators
//
// Intermediate:
//
//   - Select, SelectIndexed, SelectMany, SelectManyIndexed: projection and flattening
//   - Where, WhereIndexed: filtering
//   - Skip, Take: positional windows
//   - Distinct, DistinctBy: first occurrences only
//   - OrderBy, Order, ThenBy (and Descending forms): stable multi-key sort
//   - GroupBy, GroupByWith: grouping in first-seen key order
//   - Concat, Zip, ZipWith, ZipAll, Reverse
//
// Terminal:
//
//   - Count, Any, AnyMatch, All, ForEach
//   - Aggregate, AggregateSeed, Min, Max, MinBy, MaxBy
//   - ToArray, ToMap, ToMultiMap, ToSet, ToHashMap, ToHashSet
//   - First, Last, ElementAt and their OrDefault forms
//
// Terminals consult two optional capabilities before iterating: Counter
// for a count known without a pass, and UnorderedUnwrapper for the
// pre-sort upstream of an ordered sequence.
//
// # Usage
//
//	w := sequence.Of(3, 1, 4, 1, 5, 9, 2, 6).Pipe(
//	    sequence.Where(func(x int) bool { return x > 2 }),
//	    sequence.Order[int](),
//	)
//	doubled := sequence.Apply(w, sequence.Select(func(x int) int { return x * 2 }))
//	out := sequence.Apply(doubled, sequence.ToArray[int]())
//
// Failing terminals return *errors.AppError values; invalid step
// arguments (a negative Skip count, ThenBy on an unordered sequence) panic
// with one.
//
// Tracing of fusion decisions is off by default; enable it with Configure
// or Setup. The same events can be counted as the OpenTelemetry counter
// sequence.events (attributes operation and event) with Settings.Metrics
// or SetMeter.
package sequence
