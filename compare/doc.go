// Package compare provides the comparers consumed by the sequence engine.
//
// Comparer[T] is a three-way ordering function. Default orders values of
// mixed primitive categories consistently: nil < bool < numbers < strings <
// times < everything else. Equality[T] pairs an equivalence with a hash so
// that hash-bucketed containers can be parametrized by it.
package compare
