package heap

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"minisql/pkg/dberror"
	"minisql/pkg/storage/page"
	"minisql/pkg/types"
)

// failingPager fails the failOn-th call to WritePage, counting from 1.
type failingPager struct {
	*page.MemoryPager
	writes int
	failOn int
}

func (p *failingPager) WritePage(pg *page.Page) error {
	p.writes++
	if p.writes == p.failOn {
		return errors.New("disk full")
	}
	return p.MemoryPager.WritePage(pg)
}

func newUsersHeap(t *testing.T) *HeapFile {
	t.Helper()
	layout, err := NewLayout([]types.ColumnType{types.Int(), types.Char(10)})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	hf, err := NewHeapFile(page.NewMemoryPager(), layout)
	if err != nil {
		t.Fatalf("NewHeapFile: %v", err)
	}
	return hf
}

func user(id int32, name string) types.Row {
	return types.Row{types.NewInt32Field(id), types.NewCharField(name, 10, types.DefaultPadByte)}
}

func collect(t *testing.T, hf *HeapFile) ([]RecordID, []types.Row) {
	t.Helper()
	var rids []RecordID
	var rows []types.Row
	it := hf.Scan()
	defer it.Close()
	for it.Next() {
		rids = append(rids, it.RecordID())
		rows = append(rows, it.Row())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return rids, rows
}

func TestLayout(t *testing.T) {
	layout, err := NewLayout([]types.ColumnType{types.Int(), types.Char(10), types.Int()})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}

	if layout.RecordSize() != 18 {
		t.Errorf("RecordSize = %d, want 18", layout.RecordSize())
	}
	for i, want := range []int{0, 4, 14} {
		if got := layout.Offset(i); got != want {
			t.Errorf("Offset(%d) = %d, want %d", i, got, want)
		}
	}
	if layout.RecordsPerPage() != page.PayloadSize/18 {
		t.Errorf("RecordsPerPage = %d", layout.RecordsPerPage())
	}
}

func TestLayout_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cols []types.ColumnType
	}{
		{"no columns", nil},
		{"zero char", []types.ColumnType{types.Char(0)}},
		{"negative char", []types.ColumnType{types.Int(), types.Char(-1)}},
		{"record larger than a page", []types.ColumnType{types.Char(page.PayloadSize), types.Int()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLayout(tt.cols); !errors.Is(err, dberror.ErrInvalidType) {
				t.Errorf("expected INVALID_TYPE, got %v", err)
			}
		})
	}

	if _, err := NewLayout([]types.ColumnType{types.Char(page.PayloadSize)}); err != nil {
		t.Errorf("a record filling the whole payload should fit: %v", err)
	}
}

func TestHeapFile_AppendAndScan(t *testing.T) {
	hf := newUsersHeap(t)

	if _, err := hf.Append(user(1, "alice")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := hf.Append(user(2, "bob")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	_, rows := collect(t, hf)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][1].String() != "alice     " || rows[1][1].String() != "bob       " {
		t.Errorf("unexpected rows %v %v", rows[0].Strings(), rows[1].Strings())
	}
	if hf.RowCount() != 2 {
		t.Errorf("RowCount = %d, want 2", hf.RowCount())
	}
}

func TestHeapFile_ArityMismatch(t *testing.T) {
	hf := newUsersHeap(t)

	_, err := hf.Append(types.Row{types.NewInt32Field(1)})
	if !errors.Is(err, dberror.ErrArityMismatch) {
		t.Fatalf("expected ARITY_MISMATCH, got %v", err)
	}
	if hf.RowCount() != 0 || hf.NumPages() != 0 {
		t.Errorf("failed append left %d rows on %d pages", hf.RowCount(), hf.NumPages())
	}
}

func TestHeapFile_FieldMismatch(t *testing.T) {
	hf := newUsersHeap(t)

	bad := []types.Row{
		{types.NewCharField("x", 4, ' '), types.NewCharField("alice", 10, ' ')},
		{types.NewInt32Field(1), types.NewCharField("alice", 5, ' ')},
		{types.NewInt32Field(1), nil},
	}
	for i, row := range bad {
		if _, err := hf.Append(row); !errors.Is(err, dberror.ErrTypeMismatch) {
			t.Errorf("row %d: expected TYPE_MISMATCH, got %v", i, err)
		}
	}
}

func TestHeapFile_SpansPages(t *testing.T) {
	layout, _ := NewLayout([]types.ColumnType{types.Char(1000)})
	hf, _ := NewHeapFile(page.NewMemoryPager(), layout)

	const n = 10
	for i := 0; i < n; i++ {
		if _, err := hf.Append(types.Row{types.NewCharField(fmt.Sprint(i), 1000, ' ')}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	if layout.RecordsPerPage() != 4 {
		t.Fatalf("RecordsPerPage = %d, want 4", layout.RecordsPerPage())
	}
	if hf.NumPages() != 3 {
		t.Errorf("NumPages = %d, want 3", hf.NumPages())
	}

	rids, rows := collect(t, hf)
	if len(rows) != n {
		t.Fatalf("got %d rows, want %d", len(rows), n)
	}
	for i := range rows {
		if rows[i][0].String()[:1] != fmt.Sprint(i) {
			t.Errorf("row %d out of order: %q", i, rows[i][0].String()[:1])
		}
		if i > 0 && rids[i-1].Compare(rids[i]) >= 0 {
			t.Errorf("record ids not increasing: %s then %s", rids[i-1], rids[i])
		}
	}
	if rids[4] != (RecordID{PageNo: 1, Slot: 0}) {
		t.Errorf("fifth record at %s, want (1,0)", rids[4])
	}
}

func TestHeapFile_UpdateField(t *testing.T) {
	hf := newUsersHeap(t)
	_, _ = hf.Append(user(1, "alice"))
	rid, _ := hf.Append(user(2, "bob"))

	if err := hf.UpdateField([]RecordID{rid}, 1, types.NewCharField("carol", 10, ' ')); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}

	_, rows := collect(t, hf)
	if got := rows[1].Strings(); got[0] != "2" || got[1] != "carol     " {
		t.Errorf("updated row = %q", got)
	}
	if got := rows[0].Strings(); got[1] != "alice     " {
		t.Errorf("neighbouring row changed: %q", got)
	}
}

func TestHeapFile_UpdateFieldErrors(t *testing.T) {
	hf := newUsersHeap(t)
	rid, _ := hf.Append(user(1, "alice"))

	rids := []RecordID{rid}

	if err := hf.UpdateField(rids, 5, types.NewInt32Field(1)); !errors.Is(err, dberror.ErrInternal) {
		t.Errorf("bad column: %v", err)
	}
	if err := hf.UpdateField(rids, 0, types.NewCharField("x", 10, ' ')); !errors.Is(err, dberror.ErrTypeMismatch) {
		t.Errorf("bad type: %v", err)
	}

	missing := []RecordID{rid, {PageNo: 0, Slot: 1}}
	if err := hf.UpdateField(missing, 0, types.NewInt32Field(9)); !errors.Is(err, dberror.ErrInternal) {
		t.Errorf("missing record: %v", err)
	}
	if _, rows := collect(t, hf); rows[0][0].String() != "1" {
		t.Errorf("a rejected update changed row %v", rows[0].Strings())
	}
}

func TestIterator_Restartable(t *testing.T) {
	hf := newUsersHeap(t)
	_, _ = hf.Append(user(1, "a"))

	_, first := collect(t, hf)
	_, _ = hf.Append(user(2, "b"))
	_, second := collect(t, hf)
	if len(first) != 1 || len(second) != 2 {
		t.Fatalf("scans saw %d then %d rows", len(first), len(second))
	}
}

func TestIterator_SnapshotOfLength(t *testing.T) {
	hf := newUsersHeap(t)
	_, _ = hf.Append(user(1, "a"))

	it := hf.Scan()
	defer it.Close()
	n := 0
	for it.Next() {
		n++
		if n < 5 {
			_, _ = hf.Append(user(int32(n+1), "x"))
		}
	}
	if n != 1 {
		t.Errorf("iterator visited %d rows, want only the row present at Scan", n)
	}
}

func TestHeapFile_ReopenFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.tbl")
	layout, _ := NewLayout([]types.ColumnType{types.Int(), types.Char(10)})

	pager, err := page.NewFilePager(path)
	if err != nil {
		t.Fatalf("NewFilePager: %v", err)
	}
	hf, _ := NewHeapFile(pager, layout)
	for i := int32(0); i < 3; i++ {
		if _, err := hf.Append(user(i, "u")); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := hf.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	pager, err = page.NewFilePager(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	reopened, err := NewHeapFile(pager, layout)
	if err != nil {
		t.Fatalf("NewHeapFile: %v", err)
	}
	defer reopened.Close()

	if reopened.RowCount() != 3 {
		t.Errorf("RowCount after reopen = %d, want 3", reopened.RowCount())
	}
	_, rows := collect(t, reopened)
	if rows[2][0].String() != "2" {
		t.Errorf("last row = %v", rows[2].Strings())
	}
}

func TestHeapFile_AppendAfterFailedWrite(t *testing.T) {
	pager := &failingPager{MemoryPager: page.NewMemoryPager(), failOn: 1}
	layout, _ := NewLayout([]types.ColumnType{types.Int()})
	hf, _ := NewHeapFile(pager, layout)

	if _, err := hf.Append(types.Row{types.NewInt32Field(7)}); err == nil {
		t.Fatal("first append should fail")
	}
	if hf.RowCount() != 0 {
		t.Fatalf("failed append counted a row")
	}

	rid, err := hf.Append(types.Row{types.NewInt32Field(42)})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if rid != (RecordID{PageNo: 0, Slot: 0}) || hf.NumPages() != 1 {
		t.Errorf("append landed at %s with %d pages, want (0,0) on one page", rid, hf.NumPages())
	}

	_, rows := collect(t, hf)
	if len(rows) != 1 || rows[0][0].String() != "42" {
		t.Fatalf("scan = %v, want only 42", rows)
	}
	if err := hf.UpdateField([]RecordID{rid}, 0, types.NewInt32Field(43)); err != nil {
		t.Errorf("UpdateField on the returned record: %v", err)
	}
}

func TestHeapFile_ReopenAfterFailedWrite(t *testing.T) {
	pager := &failingPager{MemoryPager: page.NewMemoryPager(), failOn: 1}
	layout, _ := NewLayout([]types.ColumnType{types.Int()})
	hf, _ := NewHeapFile(pager, layout)
	_, _ = hf.Append(types.Row{types.NewInt32Field(7)})

	reopened, err := NewHeapFile(pager, layout)
	if err != nil {
		t.Fatalf("NewHeapFile: %v", err)
	}
	if reopened.RowCount() != 0 {
		t.Errorf("RowCount = %d, want 0", reopened.RowCount())
	}
	if _, err := reopened.Append(types.Row{types.NewInt32Field(1)}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, rows := collect(t, reopened); len(rows) != 1 || rows[0][0].String() != "1" {
		t.Errorf("scan = %v", rows)
	}
}

func TestHeapFile_UpdateFieldIsAllOrNothing(t *testing.T) {
	pager := &failingPager{MemoryPager: page.NewMemoryPager()}
	layout, _ := NewLayout([]types.ColumnType{types.Char(1000)})
	hf, _ := NewHeapFile(pager, layout)

	var rids []RecordID
	for i := 0; i < 8; i++ {
		rid, err := hf.Append(types.Row{types.NewCharField(fmt.Sprint(i), 1000, ' ')})
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		rids = append(rids, rid)
	}

	// The first page is written, the second fails.
	pager.writes, pager.failOn = 0, 2
	slices.Reverse(rids)
	if err := hf.UpdateField(rids, 0, types.NewCharField("x", 1000, ' ')); err == nil {
		t.Fatal("expected the second page write to fail")
	}

	_, rows := collect(t, hf)
	for i, row := range rows {
		if got := strings.TrimRight(row[0].String(), " "); got != fmt.Sprint(i) {
			t.Errorf("row %d = %q after a failed update", i, got)
		}
	}
}
