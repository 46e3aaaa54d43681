package collection

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

type item struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func itemKey(i item) string { return i.ID }

func testStore(t *testing.T) (*Store, *Memory) {
	t.Helper()
	mem := NewMemory()
	return NewStore(mem, zaptest.NewLogger(t)), mem
}

func TestLoadAbsentIsEmpty(t *testing.T) {
	s, _ := testStore(t)
	got := Of(s, "nothing", itemKey).Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("Load() = %#v, want empty non-nil slice", got)
	}
}

func TestLoadCorruptIsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"garbage", "{not json"},
		{"object instead of array", `{"_id":"L1"}`},
		{"wrong element type", `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mem := testStore(t)
			_ = mem.Write(Wishlist, []byte(tt.payload))
			if got := Of(s, Wishlist, itemKey).Load(); len(got) != 0 {
				t.Errorf("Load() = %v, want empty", got)
			}
		})
	}
}

func TestMutationOverwritesCorrupt(t *testing.T) {
	s, mem := testStore(t)
	_ = mem.Write(Wishlist, []byte("{broken"))

	c := Of(s, Wishlist, itemKey)
	res, err := c.UpsertOrRemove("L1", item{ID: "L1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.State != Added || len(res.Records) != 1 {
		t.Fatalf("result = %+v, want added with 1 record", res)
	}
	if got := c.Load(); len(got) != 1 || got[0].ID != "L1" {
		t.Errorf("Load() = %v, want [L1]", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s, _ := testStore(t)
	c := Of(s, "things", itemKey)
	want := []item{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	if err := c.Save(want); err != nil {
		t.Fatal(err)
	}
	got := c.Load()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	s, mem := testStore(t)
	if err := Of(s, "things", itemKey).Save(nil); err != nil {
		t.Fatal(err)
	}
	raw, _ := mem.Read("things")
	if string(raw) != "[]" {
		t.Errorf("payload = %q, want []", raw)
	}
}

func TestUpsertOrRemoveParity(t *testing.T) {
	s, _ := testStore(t)
	c := Of(s, Wishlist, itemKey)
	rec := item{ID: "L1", Name: "Flat"}

	for i := 1; i <= 6; i++ {
		res, err := c.UpsertOrRemove(rec.ID, rec)
		if err != nil {
			t.Fatal(err)
		}
		wantState, wantLen := Added, 1
		if i%2 == 0 {
			wantState, wantLen = Removed, 0
		}
		if res.State != wantState || len(res.Records) != wantLen {
			t.Fatalf("toggle %d: got %s with %d records, want %s with %d", i, res.State, len(res.Records), wantState, wantLen)
		}
		if c.Contains(rec.ID) != (wantLen == 1) {
			t.Fatalf("toggle %d: Contains = %v", i, c.Contains(rec.ID))
		}
	}
}

func TestUpsertOrRemoveKeepsOthersInOrder(t *testing.T) {
	s, _ := testStore(t)
	c := Of(s, Wishlist, itemKey)
	for _, id := range []string{"a", "b", "c"} {
		if _, err := c.UpsertOrRemove(id, item{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	res, err := c.UpsertOrRemove("b", item{ID: "b"})
	if err != nil {
		t.Fatal(err)
	}
	if res.State != Removed {
		t.Fatalf("state = %s, want removed", res.State)
	}
	if len(res.Records) != 2 || res.Records[0].ID != "a" || res.Records[1].ID != "c" {
		t.Errorf("records = %v, want [a c]", res.Records)
	}
}

func TestRemoveKey(t *testing.T) {
	s, _ := testStore(t)
	c := Of(s, Wishlist, itemKey)
	_ = c.Save([]item{{ID: "a"}, {ID: "b"}})

	got, err := c.RemoveKey("a")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("RemoveKey(a) = %v, want [b]", got)
	}
	got, err = c.RemoveKey("missing")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("RemoveKey(missing) = %v, want unchanged", got)
	}
}

func TestAppendAllowsDuplicates(t *testing.T) {
	s, _ := testStore(t)
	c := Of(s, Reviews("L1"), func(i item) string { return i.Name })
	for i := 0; i < 2; i++ {
		if _, err := c.Append(item{Name: "same"}); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.Load(); len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestClear(t *testing.T) {
	s, _ := testStore(t)
	c := Of(s, Reviews("L1"), itemKey)
	_, _ = c.Append(item{ID: "x"})
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if got := c.Load(); len(got) != 0 {
		t.Errorf("Load() after Clear = %v", got)
	}
	names, _ := s.Names()
	if len(names) != 0 {
		t.Errorf("Names() = %v, want none", names)
	}
}

type failingBackend struct{ *Memory }

var errDisk = errors.New("disk gone")

func (failingBackend) Read(string) ([]byte, error) { return nil, errDisk }

func TestBackendReadFailure(t *testing.T) {
	s := NewStore(failingBackend{NewMemory()}, zaptest.NewLogger(t))
	c := Of(s, Wishlist, itemKey)

	if got := c.Load(); len(got) != 0 {
		t.Errorf("Load() = %v, want empty on backend failure", got)
	}
	if _, err := c.UpsertOrRemove("a", item{ID: "a"}); !errors.Is(err, errDisk) {
		t.Errorf("UpsertOrRemove() error = %v, want errDisk", err)
	}
}

func TestReviewsNaming(t *testing.T) {
	name := Reviews("L42")
	if name != "reviews_L42" {
		t.Fatalf("Reviews(L42) = %q", name)
	}
	id, ok := ReviewsListingID(name)
	if !ok || id != "L42" {
		t.Errorf("ReviewsListingID(%q) = %q, %v", name, id, ok)
	}
	if _, ok := ReviewsListingID(Wishlist); ok {
		t.Error("wishlist should not parse as a reviews collection")
	}
}
