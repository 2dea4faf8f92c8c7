// handlers/report_handler_test.go
package handlers

import "testing"

func TestTypePercentages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		returnable    int64
		nonReturnable int64
		wantRet       string
		wantNonRet    string
	}{
		{"three to one", 3, 1, "75.00", "25.00"},
		{"all returnable", 5, 0, "100.00", "0.00"},
		{"all non-returnable", 0, 2, "0.00", "100.00"},
		{"no requests", 0, 0, "0.00", "0.00"},
		{"thirds round to two places", 1, 2, "33.33", "66.67"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := typePercentages(tt.returnable, tt.nonReturnable)
			if len(got) != 2 {
				t.Fatalf("got %d shares, want 2", len(got))
			}
			if got[0].Title != "returnable" || got[0].Percentage != tt.wantRet {
				t.Errorf("returnable: got %+v, want %s", got[0], tt.wantRet)
			}
			if got[1].Title != "non-returnable" || got[1].Percentage != tt.wantNonRet {
				t.Errorf("non-returnable: got %+v, want %s", got[1], tt.wantNonRet)
			}
		})
	}
}
