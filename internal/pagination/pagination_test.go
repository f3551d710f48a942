package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 8, 0},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{17, 8, 3},
		{5, 0, 0},
	}
	for _, tc := range tests {
		if got := TotalPages(tc.count, tc.size); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.count, tc.size, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(0, 3) != 1 {
		t.Error("page below range should clamp to 1")
	}
	if Clamp(5, 3) != 3 {
		t.Error("page above range should clamp to last page")
	}
	if Clamp(2, 3) != 2 {
		t.Error("in-range page should be unchanged")
	}
	if Clamp(4, 0) != 1 {
		t.Error("no pages should clamp to 1")
	}
}

func TestSlice(t *testing.T) {
	items := make([]int, 9)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("first page uses view page size", func(t *testing.T) {
		resp := Slice(items, PageRequest{})
		if len(resp.Data) != 8 || resp.Page != 1 || resp.PageSize != ViewPageSize {
			t.Fatalf("unexpected first page: %+v", resp)
		}
		if resp.TotalPages != 2 || resp.TotalItems != 9 {
			t.Errorf("expected 2 pages of 9 items, got %d pages of %d", resp.TotalPages, resp.TotalItems)
		}
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 2})
		if len(resp.Data) != 1 || resp.Data[0] != 9 {
			t.Fatalf("expected [9], got %v", resp.Data)
		}
	})

	t.Run("page beyond range is clamped", func(t *testing.T) {
		resp := Slice(items, PageRequest{Page: 3})
		if resp.Page != 2 {
			t.Errorf("expected clamp to page 2, got %d", resp.Page)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		resp := Slice([]int(nil), PageRequest{Page: 4})
		if resp.Data == nil || len(resp.Data) != 0 || resp.Page != 1 || resp.TotalPages != 0 {
			t.Errorf("unexpected empty page: %+v", resp)
		}
	})
}
