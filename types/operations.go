package types

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

type OperationType byte

const (
	OpInsert OperationType = 1
	OpDelete OperationType = 2
	OpSearch OperationType = 3
)

func (t OperationType) String() string {
	switch t {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSearch:
		return "search"
	default:
		return fmt.Sprintf("op(%d)", byte(t))
	}
}

func (t OperationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *OperationType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "insert":
		*t = OpInsert
	case "delete":
		*t = OpDelete
	case "search":
		*t = OpSearch
	default:
		return errors.Newf("unknown operation %q", b)
	}
	return nil
}

// Operation is one step a session runs against a tree.
type Operation struct {
	Type OperationType `json:"type"`
	Key  int64         `json:"key"`
}

func Insert(key int64) Operation { return Operation{Type: OpInsert, Key: key} }
func Delete(key int64) Operation { return Operation{Type: OpDelete, Key: key} }
func Search(key int64) Operation { return Operation{Type: OpSearch, Key: key} }

func (op Operation) String() string {
	return fmt.Sprintf("%s %d", op.Type, op.Key)
}
