package value

import "github.com/lmpynix/minimp/errs"

// ArrayView is a lazy view over a decoded Array element's children. The view
// holds no parsed elements; Next parses exactly one element per call,
// borrowing from the same buffer the array itself was decoded from. (DecodeAt
// walks the elements once when it builds the view, to check them and to
// compute the array's byte length.)
//
// Next walks the buffer with a byte cursor, so it handles arrays whose
// elements differ in width. Get does not: it memoizes the byte width of
// element 0 and locates element idx at idx times that width, so on a
// heterogeneous array Get misparses every index past 0. Use Next for arrays
// whose elements may differ in width.
type ArrayView struct {
	buf     []byte
	base    int // offset of first element
	count   int
	hdrWidth int // the actual header width this array was decoded with
	engine  decodeEngine

	next      int // index of next element Next will return
	cursor    int // byte offset of next element
	elemWidth int // memoized width of element 0, 0 until known
}

func newArrayView(buf []byte, base, count, hdrWidth int, engine decodeEngine) *ArrayView {
	return &ArrayView{buf: buf, base: base, count: count, hdrWidth: hdrWidth, engine: engine, cursor: base}
}

// Len returns the number of elements in the array.
func (a *ArrayView) Len() int { return a.count }

// HeaderWidth returns the byte width of the array's length prefix as it was
// actually decoded: 0 for fixarray, 2 for array16, 4 for array32.
func (a *ArrayView) HeaderWidth() int { return a.hdrWidth }

// Reset rewinds the view so Next will return element 0 again. The memoized
// element width is kept, since it is a property of the data, not the cursor.
func (a *ArrayView) Reset() {
	a.next = 0
	a.cursor = a.base
}

// Next decodes and returns the next element, advancing the cursor. It
// reports false once every element has been returned.
//
// The fetch-then-advance order matters: the element at the current cursor is
// decoded first, and only then is the index counter incremented. An earlier
// draft incremented first and fetched second, which silently skipped element
// 0 and read one element past the end.
func (a *ArrayView) Next() (Element, bool, error) {
	if a.next >= a.count {
		return Element{}, false, nil
	}

	if a.elemWidth != 0 {
		el, n, err := decodeAt(a.buf, a.cursor, a.engine)
		if err != nil {
			return Element{}, false, err
		}
		if a.next == 0 {
			a.elemWidth = n
		}
		a.cursor += n
		a.next++
		return el, true, nil
	}

	el, n, err := decodeAt(a.buf, a.cursor, a.engine)
	if err != nil {
		return Element{}, false, err
	}
	a.elemWidth = n
	a.cursor += n
	a.next++
	return el, true, nil
}

// Get decodes the element at logical index idx without disturbing Next's
// cursor. It assumes every element has the byte width of element 0 (see the
// type comment). Once that width has been learned (by a call to Next or Get),
// this is O(1); otherwise Get first decodes element 0 to learn it.
func (a *ArrayView) Get(idx int) (Element, error) {
	if idx < 0 || idx >= a.count {
		return Element{}, errs.ErrIndexOutOfRange
	}

	if a.elemWidth == 0 {
		el, n, err := decodeAt(a.buf, a.base, a.engine)
		if err != nil {
			return Element{}, err
		}
		a.elemWidth = n
		if idx == 0 {
			return el, nil
		}
	}

	off := a.base + idx*a.elemWidth
	el, _, err := decodeAt(a.buf, off, a.engine)
	return el, err
}

// byteSize returns the total payload size (excluding the array's own header)
// by walking every element once.
func (a *ArrayView) byteSize() int {
	clone := *a
	clone.Reset()
	total := 0
	for {
		el, ok, err := clone.Next()
		if err != nil || !ok {
			break
		}
		total += el.ByteSize()
	}
	return total
}
