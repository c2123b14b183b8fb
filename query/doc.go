// Package query provides a generic, in-memory query layer over ordered
// collections: filtering, projection, ordering, set algebra, element
// lookup and aggregation, composed by chaining.
//
// # Overview
//
// A [Sequence] is an immutable, ordered list of elements. Operators that
// produce a sequence return a new one and never touch the receiver, so a
// sequence can be shared and queried from several places at once:
//
//	adults := query.From(people).Where(func(p Person) bool { return p.Age >= 18 })
//	names := query.Select(adults, func(p Person) string { return p.Name })
//	first, err := names.First()
//
// Operators whose result type differs from the element type (Select, Zip,
// Chunk, Cast, GroupBy, OrderBy, Sum and friends) are package functions,
// because a method on Sequence[T] can neither introduce type parameters nor
// return a Sequence of a type built from T. Everything else is a method.
//
// # Errors
//
// Errors do not interrupt a chain. An operator given an invalid argument
// returns a sequence carrying an [*OperatorError]; the operators after it
// pass that error through, and the terminal operator that ends the chain
// returns it:
//
//	_, err := query.Of(1, 2, 3).Take(-1).Where(isOdd).Count()
//	errors.Is(err, qerrors.ErrInvalidArgument) // true
//
// Lookups that legitimately find nothing have OrDefault forms returning
// an [optional.Value] instead of failing.
//
// # Equality
//
// Dedup and set operators come in three flavors. Distinct, Except,
// Intersect, Union and Contains use == and need a comparable element type.
// The By forms compare keys extracted by a selector. The Collectable forms
// work with any [collectable.Collectable] type, hashing elements and
// resolving collisions with Equals.
//
// # Ordering
//
// OrderBy, OrderByDesc and OrderByFunc return an [Ordered], which is a
// Sequence that also accepts secondary keys through ThenBy, ThenByDesc and
// [Ordered.ThenByFunc]. Sorting is stable.
//
// # Thread Safety
//
// Sequences are safe for concurrent reads. Predicates and selectors run on
// the calling goroutine and must not mutate the elements they are given.
//
// [optional.Value]: github.com/amp-labs/amp-query/optional.Value
// [collectable.Collectable]: github.com/amp-labs/amp-query/collectable.Collectable
package query
