// Package dupseq finds identical sequences in a set. Sequences are
// bucketed by a content digest and then compared byte for byte, so a
// digest collision can never produce a false duplicate. xxh3 is the
// default; blake2b is there for anyone who wants a cryptographic
// digest instead.

package dupseq

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Digest algorithm choice.
type Alg int

const (
	AlgXXH3 Alg = iota + 1
	AlgBlake2b
)

func digest(alg Alg, s string) (string, error) {
	switch alg {
	case AlgXXH3:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], xxh3.HashString(s))
		return string(b[:]), nil
	case AlgBlake2b:
		sum := blake2b.Sum256([]byte(s))
		return string(sum[:]), nil
	}
	return "", fmt.Errorf("unknown digest algorithm %d", alg)
}

// Groups finds sets of identical strings in seqs. Each returned group
// holds the indices of one string that occurs more than once, in
// order of first occurrence. Strings occurring once produce no group.
func Groups(seqs []string, alg Alg) ([][]int, error) {
	type bucket struct {
		members [][]int // sub-grouped by real equality
	}
	byDigest := make(map[string]*bucket)
	order := []*bucket{} // buckets in order of first appearance

	for i, s := range seqs {
		d, err := digest(alg, s)
		if err != nil {
			return nil, err
		}
		bkt, ok := byDigest[d]
		if !ok {
			bkt = &bucket{}
			byDigest[d] = bkt
			order = append(order, bkt)
		}
		placed := false
		for gi, grp := range bkt.members {
			if seqs[grp[0]] == s {
				bkt.members[gi] = append(grp, i)
				placed = true
				break
			}
		}
		if !placed {
			bkt.members = append(bkt.members, []int{i})
		}
	}

	var groups [][]int
	for _, bkt := range order {
		for _, grp := range bkt.members {
			if len(grp) > 1 {
				groups = append(groups, grp)
			}
		}
	}
	return groups, nil
}
