// Package sizeclass picks growth increments for the heap's per-kind
// vectors. Rather than Go's default amortized slice doubling (which tends to
// over-reserve for small kinds and under-reserve for hot ones like Ordinary
// objects), each kind grows in page-sized chunks, the way the teacher
// codebase grows HBINs in whole 4KB pages rather than arbitrary byte counts.
package sizeclass

// Class names a heap vector's growth tier, roughly the expected live-object
// count for that kind in a typical realm.
type Class uint8

const (
	// ClassHot covers vectors with heavy allocation traffic: ordinary
	// objects, strings, numbers.
	ClassHot Class = iota
	// ClassWarm covers moderate-traffic vectors: arrays, symbols, bigints.
	ClassWarm
	// ClassCold covers rarely-allocated vectors: array buffers, modules,
	// array iterators, functions, promises.
	ClassCold
)

// elementsPerPage approximates how many records of an average size for the
// class fit in one OS page, used only to pick a sensible growth increment —
// never to place records at a computed address (the heap vectors are
// ordinary Go slices, not memory-mapped regions).
var elementsPerPage = map[Class]int{
	ClassHot:  0, // filled in by init() from the queried page size
	ClassWarm: 0,
	ClassCold: 0,
}

// averageRecordBytes is a rough per-class record size used only to convert
// the OS page size into a growth-chunk element count.
var averageRecordBytes = map[Class]int{
	ClassHot:  64,
	ClassWarm: 96,
	ClassCold: 256,
}

func init() {
	page := queryPageSize()
	if page <= 0 {
		page = 4096
	}
	for class, size := range averageRecordBytes {
		n := page / size
		if n < 16 {
			n = 16
		}
		elementsPerPage[class] = n
	}
}

// GrowthChunk returns the number of elements a vector of the given class
// should grow by when it runs out of capacity.
func GrowthChunk(class Class) int {
	return elementsPerPage[class]
}

// NextCapacity returns the smallest multiple of GrowthChunk(class) that is
// >= needed, mirroring the teacher's AlignHBIN page-rounding helper.
func NextCapacity(class Class, needed int) int {
	chunk := GrowthChunk(class)
	if chunk <= 0 {
		chunk = 16
	}
	if needed <= 0 {
		return chunk
	}
	return ((needed + chunk - 1) / chunk) * chunk
}
