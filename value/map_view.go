package value

// MapView is a lazy, allocation-free view over a decoded Map element's
// key/value pairs. Unlike ArrayView, a map's keys and values are not assumed
// to share a width with one another or across pairs; Next walks the buffer
// byte cursor by byte cursor, decoding a key and then its value in sequence.
type MapView struct {
	buf      []byte
	base     int // offset of first key
	pairs    int // number of pairs
	hdrWidth int // the actual header width this map was decoded with
	engine   decodeEngine

	next   int // index of next pair Next will return
	cursor int // byte offset of next key
}

func newMapView(buf []byte, base, pairs, hdrWidth int, engine decodeEngine) *MapView {
	return &MapView{buf: buf, base: base, pairs: pairs, hdrWidth: hdrWidth, engine: engine, cursor: base}
}

// Len returns the number of key/value pairs in the map.
func (m *MapView) Len() int { return m.pairs }

// HeaderWidth returns the byte width of the map's pair-count prefix as it was
// actually decoded: 0 for fixmap, 2 for map16, 4 for map32.
func (m *MapView) HeaderWidth() int { return m.hdrWidth }

// Reset rewinds the view so Next will return pair 0 again.
func (m *MapView) Reset() {
	m.next = 0
	m.cursor = m.base
}

// Next decodes and returns the next key/value pair, advancing the cursor. It
// reports false once every pair has been returned.
//
// The loop bound is the pair count itself, not half of some combined element
// count: a fixmap tag's low nibble already counts pairs, and map16/map32
// headers store the pair count directly, so there is no elements/2 division
// to get wrong here.
func (m *MapView) Next() (MapPair, bool, error) {
	if m.next >= m.pairs {
		return MapPair{}, false, nil
	}

	key, kn, err := decodeAt(m.buf, m.cursor, m.engine)
	if err != nil {
		return MapPair{}, false, err
	}
	val, vn, err := decodeAt(m.buf, m.cursor+kn, m.engine)
	if err != nil {
		return MapPair{}, false, err
	}

	m.cursor += kn + vn
	m.next++
	return MapPair{Key: key, Value: val}, true, nil
}

// byteSize returns the total payload size (excluding the map's own header)
// by walking every pair once.
func (m *MapView) byteSize() int {
	clone := *m
	clone.Reset()
	total := 0
	for {
		p, ok, err := clone.Next()
		if err != nil || !ok {
			break
		}
		total += p.Key.ByteSize() + p.Value.ByteSize()
	}
	return total
}
