package field

import "sync"

// BatchInversion inverts every element of xs using a single field inversion
// plus O(n) multiplications (Montgomery's trick): build prefix products,
// invert the total, then walk backwards recovering each inverse. Elements
// that are zero map to zero, matching Inv's total convention.
//
// Grounded on core/field_batch.go's BatchInversion and traits.BatchInversion
// forward/backward-pass shape.
func BatchInversion[E Element[E]](xs []E) []E {
	n := len(xs)
	out := make([]E, n)
	if n == 0 {
		return out
	}

	var zero E
	zero = zero.Zero()

	// Forward pass: prefix[i] holds the running product of all non-zero
	// elements seen so far (zeros are treated as one, i.e. skipped).
	prefix := make([]E, n)
	acc := zero.One()
	for i, x := range xs {
		prefix[i] = acc
		if !x.IsZero() {
			acc = acc.Mul(x)
		}
	}

	accInv := acc.Inv()

	// Backward pass: recover each inverse from the running product.
	for i := n - 1; i >= 0; i-- {
		if xs[i].IsZero() {
			out[i] = zero
			continue
		}
		out[i] = accInv.Mul(prefix[i])
		accInv = accInv.Mul(xs[i])
	}
	return out
}

// ParallelBatchInversion splits xs into chunks and batch-inverts each chunk
// on its own goroutine. Correct for any numWorkers >= 1; for small batches
// it degrades to a single BatchInversion call.
//
// Grounded on core/field_batch.go's ParallelBatchInversion chunking idiom.
func ParallelBatchInversion[E Element[E]](xs []E, numWorkers int) []E {
	n := len(xs)
	if n == 0 || numWorkers <= 1 || n < 1024 {
		return BatchInversion(xs)
	}

	out := make([]E, n)
	chunkSize := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			copy(out[start:end], BatchInversion(xs[start:end]))
		}(start, end)
	}
	wg.Wait()
	return out
}

// GetPowerSeriesWithOffset returns [offset, offset*base, offset*base^2, ...]
// of length n.
func GetPowerSeriesWithOffset[E Element[E]](base, offset E, n int) []E {
	out := make([]E, n)
	current := offset
	for i := 0; i < n; i++ {
		out[i] = current
		current = current.Mul(base)
	}
	return out
}

// ZeroedVector allocates n zeroed elements of E.
func ZeroedVector[E Element[E]](n int) []E {
	out := make([]E, n)
	var zero E
	zero = zero.Zero()
	for i := range out {
		out[i] = zero
	}
	return out
}

// AsBaseElements is the base-field layout reinterpretation: a base field is
// its own extension of degree 1, so the view is the slice itself.
func AsBaseElements[E Element[E]](xs []E) []E { return xs }

// ElementsAsBytes flattens a slice of base-field elements to their raw byte
// encoding, each element contributing len(x.Bytes()) bytes.
func ElementsAsBytes[E Element[E]](xs []E) []byte {
	if len(xs) == 0 {
		return nil
	}
	elemSize := len(xs[0].Bytes())
	out := make([]byte, 0, len(xs)*elemSize)
	for _, x := range xs {
		out = append(out, x.Bytes()...)
	}
	return out
}

// BytesAsElements is the inverse of ElementsAsBytes. elementSize must be the
// exact byte width of one element; decode is the field's own canonical
// decoder (e.g. f64.FromBytes). A length that is not an exact multiple of
// elementSize yields ErrInvalidLength, and a non-positive elementSize
// yields ErrInvalidAlignment.
func BytesAsElements[E Element[E]](b []byte, elementSize int, decode func([]byte) (E, error)) ([]E, error) {
	if elementSize <= 0 {
		return nil, InvalidAlignment("element size must be positive, got %d", elementSize)
	}
	if len(b)%elementSize != 0 {
		return nil, InvalidLength("byte buffer length %d is not a multiple of %d", len(b), elementSize)
	}
	n := len(b) / elementSize
	out := make([]E, n)
	for i := 0; i < n; i++ {
		e, err := decode(b[i*elementSize : (i+1)*elementSize])
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
