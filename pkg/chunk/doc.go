// Package chunk splits a sequence into a lazily built chain of fixed-size chunks.
//
// A List is one node of the chain. Constructing a node pulls up to size elements
// from the source cursor plus exactly one look-ahead element that tells whether
// another chunk exists. Next hands the look-ahead element and the right to pull
// from the cursor over to the successor node, so the source is read exactly once
// no matter how many nodes are created.
//
//	l, err := chunk.New(chunk.Slice[int]{0, 1, 2, 3, 4, 5, 6, 7}, 3)
//	for l != nil {
//		fmt.Println(l.Chunk()) // [0 1 2], [3 4 5], [6 7]
//		if !l.HasMore() {
//			break
//		}
//		l, err = l.Next()
//	}
//
// Flatten turns a chain back into a single sequence.
package chunk
