package domain

import "fmt"

// DefaultBatchSize is the default number of repositories per classification batch.
const DefaultBatchSize = 30

// SplitBatches partitions repos into ordered batches of at most size
// repositories each. Batch k immediately follows batch k-1 in the original
// sequence, so concatenating the batches reproduces the input exactly.
//
// Returns ErrInvalidInput for a non-positive size.
func SplitBatches(repos []Repository, size int) ([][]Repository, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidInput, size)
	}

	if len(repos) == 0 {
		return nil, nil
	}

	batches := make([][]Repository, 0, (len(repos)+size-1)/size)
	for start := 0; start < len(repos); start += size {
		end := start + size
		if end > len(repos) {
			end = len(repos)
		}
		batches = append(batches, repos[start:end])
	}

	return batches, nil
}
