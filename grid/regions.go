package grid

// Regions finds the connected regions of equal label under axis-aligned
// adjacency. It returns, for every position, the id of its region
// (ids are assigned 0,1,… in order of each region's lowest position) and
// the number of regions.
//
// Time:   O(|S|·N).
// Memory: O(|S|) for the id slice and BFS queue.
func Regions(l *Labels) (ids []int, count int) {
	ids = make([]int, len(l.data))
	for i := range ids {
		ids[i] = -1
	}
	queue := make([]int, 0, 64)

	for start := range l.data {
		if ids[start] >= 0 {
			continue
		}
		label := l.data[start]
		ids[start] = count
		queue = append(queue[:0], start)

		for qi := 0; qi < len(queue); qi++ {
			l.ForEachNeighbor(queue[qi], func(q int) {
				if ids[q] < 0 && l.data[q] == label {
					ids[q] = count
					queue = append(queue, q)
				}
			})
		}
		count++
	}

	return ids, count
}
