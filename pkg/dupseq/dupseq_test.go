package dupseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"protfasta/pkg/dupseq"
)

func TestGroups(t *testing.T) {
	for _, alg := range []dupseq.Alg{dupseq.AlgXXH3, dupseq.AlgBlake2b} {
		seqs := []string{"MKV", "QRS", "MKV", "TTT", "QRS", "MKV"}
		groups, err := dupseq.Groups(seqs, alg)
		assert.NoError(t, err)
		assert.Equal(t, [][]int{{0, 2, 5}, {1, 4}}, groups)
	}
}

func TestGroupsNoDups(t *testing.T) {
	groups, err := dupseq.Groups([]string{"A", "B", "C"}, dupseq.AlgXXH3)
	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupsEmpty(t *testing.T) {
	groups, err := dupseq.Groups(nil, dupseq.AlgXXH3)
	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestBadAlg(t *testing.T) {
	_, err := dupseq.Groups([]string{"A"}, dupseq.Alg(99))
	assert.Error(t, err)
}
