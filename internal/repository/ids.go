package repository

// nextID assigns max(existing)+1, or 1 for an empty collection
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
