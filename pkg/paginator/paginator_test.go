package paginator

import "testing"

func TestPaginateQueryAdjust(t *testing.T) {
	tests := []struct {
		name     string
		in       PaginateQuery
		wantPage int
		wantSize int64
	}{
		{"zero values get defaults", PaginateQuery{}, 1, DefaultPageSize},
		{"negative page clamps to first", PaginateQuery{Page: -3, PageSize: 10}, 1, 10},
		{"oversized page size clamps to max", PaginateQuery{Page: 2, PageSize: 1000}, 2, MaxPageSize},
		{"valid values untouched", PaginateQuery{Page: 4, PageSize: 25}, 4, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.in
			q.Adjust()
			if q.Page != tc.wantPage {
				t.Errorf("Page = %d, want %d", q.Page, tc.wantPage)
			}
			if q.PageSize != tc.wantSize {
				t.Errorf("PageSize = %d, want %d", q.PageSize, tc.wantSize)
			}
		})
	}
}

func TestPaginateQueryOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, PageSize: 10}
	if got := q.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
}

func TestPaginatorToResponse(t *testing.T) {
	p := Paginator{Total: 57, Count: 15, PerPage: 15, CurrentPage: 2}
	resp := p.ToResponse()

	if resp.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", resp.TotalPages)
	}
	if !resp.HasNext {
		t.Error("HasNext = false, want true")
	}
	if !resp.HasPrev {
		t.Error("HasPrev = false, want true")
	}

	last := Paginator{Total: 57, Count: 12, PerPage: 15, CurrentPage: 4}.ToResponse()
	if last.HasNext {
		t.Error("last page HasNext = true, want false")
	}
	if !last.HasPrev {
		t.Error("last page HasPrev = false, want true")
	}
}

func TestPaginateSlice(t *testing.T) {
	items := make([]int, 57)
	for i := range items {
		items[i] = i
	}

	page, p := PaginateSlice(items, PaginateQuery{Page: 4, PageSize: 15})
	if len(page) != 12 {
		t.Fatalf("len(page) = %d, want 12", len(page))
	}
	if page[0] != 45 {
		t.Errorf("page[0] = %d, want 45", page[0])
	}
	if p.Total != 57 || p.CurrentPage != 4 || p.Count != 12 {
		t.Errorf("paginator = %+v", p)
	}
}

func TestPaginateSlicePastEnd(t *testing.T) {
	items := []int{1, 2, 3}

	page, p := PaginateSlice(items, PaginateQuery{Page: 9, PageSize: 15})
	if len(page) != 0 {
		t.Fatalf("len(page) = %d, want 0", len(page))
	}
	if p.Total != 3 {
		t.Errorf("Total = %d, want 3", p.Total)
	}
}
