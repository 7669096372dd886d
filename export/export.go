package export

import "github.com/katalvlaran/dl85trees/dtree"

// Export flattens t into Records in pre-order (spec.md §6): the root is
// always Records[0], and LeftID/RightID reference positions within the
// returned slice rather than t's own internal node indices, so the
// result is self-contained and safe to serialize on its own. Export
// returns nil for an empty tree.
func Export(t *dtree.Tree) []Record {
	if t.IsEmpty() {
		return nil
	}

	records := make([]Record, 0, t.NumNodes())
	exportNode(t, 0, &records)

	return records
}

// exportNode appends treeIdx's Record (and, recursively, its children's)
// to records in pre-order, returning the index it was appended at.
func exportNode(t *dtree.Tree, treeIdx int, records *[]Record) int {
	data := t.Data(treeIdx)
	id := len(*records)
	*records = append(*records, Record{
		IsLeaf: data.IsLeaf,
		Test:   data.Test,
		Class:  data.Class,
		Error:  data.Error,
	})

	if data.IsLeaf {
		return id
	}

	if left := t.Left(treeIdx); left != 0 {
		(*records)[id].LeftID = exportNode(t, left, records)
	}
	if right := t.Right(treeIdx); right != 0 {
		(*records)[id].RightID = exportNode(t, right, records)
	}

	return id
}
