package dataset

// Record is a generated data item: an int key and a float payload
type Record struct {
	Key     int
	Payload float32
}

// InRange returns true if from <= r.Key <= to
func InRange(r Record, from, to int) bool {
	return r.Key >= from && r.Key <= to
}

// Filter appends records from src with keys in [from, to] to dst
func Filter(dst []Record, src []Record, from, to int) []Record {
	for _, r := range src {
		if InRange(r, from, to) {
			dst = append(dst, r)
		}
	}
	return dst
}

// CountInRange returns number of records with keys in [from, to]
func CountInRange(recs []Record, from, to int) int {
	n := 0
	for _, r := range recs {
		if InRange(r, from, to) {
			n++
		}
	}
	return n
}

// Keys returns keys of records
func Keys(recs []Record) []int {
	res := make([]int, len(recs))
	for i, r := range recs {
		res[i] = r.Key
	}
	return res
}
