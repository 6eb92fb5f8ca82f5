package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDeleteCaseString checks the names renderers branch on.
func TestDeleteCaseString(t *testing.T) {
	tests := []struct {
		c    DeleteCase
		want string
	}{
		{NotFound, "not_found"},
		{Leaf, "leaf"},
		{OneChild, "one_child"},
		{TwoChildren, "two_children"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

// TestOperationJSON ensures operation types travel as names.
func TestOperationJSON(t *testing.T) {
	op := Delete(30)
	data, err := json.Marshal(op)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"delete","key":30}`, string(data))

	var back Operation
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, op, back)

	require.Error(t, json.Unmarshal([]byte(`{"type":"upsert","key":1}`), &back))
}

// TestParseKind tests kind names and rejects unknown ones.
func TestParseKind(t *testing.T) {
	k, err := ParseKind(" AVL ")
	require.NoError(t, err)
	require.Equal(t, KindAVL, k)

	_, err = ParseKind("redblack")
	require.Error(t, err)
}
