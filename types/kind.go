package types

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind names one of the tree engines.
type Kind string

const (
	KindBST   Kind = "bst"
	KindAVL   Kind = "avl"
	KindBTree Kind = "btree"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindBST, KindAVL, KindBTree:
		return k, nil
	default:
		return "", errors.Newf("unknown tree kind %q (want bst, avl or btree)", s)
	}
}
