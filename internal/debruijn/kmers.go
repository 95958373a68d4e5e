package debruijn

// kmerTable maps each k-mer to its number of occurrences across every
// read in the input
type kmerTable map[string]int

// countRead slides a k-wide window over the read, one position at a
// time, and counts every window it sees. A read shorter than k
// contributes nothing. A read of length L contributes L-k+1 windows
func (t kmerTable) countRead(read string, k int) {
	if k < 1 {
		return
	}
	for i := 0; i+k <= len(read); i++ {
		t[read[i:i+k]]++
	}
}

// total returns the number of k-mer occurrences in the table, counting
// duplicates
func (t kmerTable) total() int {
	sum := 0
	for _, count := range t {
		sum += count
	}
	return sum
}

// buildKmerTable streams every sequence in the reads file into a fresh
// count table. It returns the table and the number of reads seen
func buildKmerTable(path string, k int) (kmerTable, int, error) {
	table := make(kmerTable)
	reads := 0
	err := eachSequence(path, func(seq string) error {
		table.countRead(seq, k)
		reads++
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return table, reads, nil
}
