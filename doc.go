// Package natset provides a compact set of non-negative integers.
//
// A Set stores membership as a sparse mapping from slice index to a
// 512-bit block. Dense or clustered data costs a few bits per element
// instead of a map entry per element, and the memory used is proportional
// to the number of occupied slices, not to the largest element.
//
// # Quick Start
//
//	s := natset.FromSlice(3, 3, 3, 2, 2, 1)
//	s.ToSlice()               // [1 2 3]
//	s.Insert(1000).Delete(2)  // in place, chainable
//	s.Contains(1000)          // true
//	fmt.Println(s)            // Set<[1, 3, 1000]>
//
// # Set Algebra
//
// Union, Intersection, Difference and SymmetricDifference return new sets
// and never modify or alias their arguments:
//
//	a := natset.FromRange(5, 15)
//	b := natset.FromRange(10, 25)
//	natset.Union(a, b)        // 5..25
//	natset.Intersection(a, b) // 10..15
//	natset.Difference(a, b)   // 5..9
//
// Equal, Subset and Disjoint compare sets without enumerating elements.
//
// # Iteration
//
// All returns an ascending, restartable iter.Seq[int]:
//
//	for n := range s.All() {
//	    fmt.Println(n)
//	}
//
// Set implements Iterable, Counter and Container. Builder implements
// Collector for incremental construction from a stream:
//
//	b := natset.NewBuilder(natset.WithTransform(func(x int) int { return x * 2 }))
//	for _, x := range input {
//	    if err := b.Add(x); err != nil { ... }
//	}
//	s := b.Build()
//
// # Errors
//
// Negative elements are a programmer error. Contains, Insert and Delete
// panic with *ErrNegativeElement; FromFunc, Builder.Add, Collect and
// Validate return it instead. Both match ErrInvalidArgument with
// errors.Is.
//
// # Concurrency
//
// A Set is not safe for concurrent mutation. Distinct sets never share
// storage, so read-only use of the inputs of binary operations from
// several goroutines is safe.
package natset
