// storage/asset_filter_test.go
package storage

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAssetFilterEmpty(t *testing.T) {
	t.Parallel()
	filter, _ := AssetFilter{}.Query()
	if len(filter) != 0 {
		t.Errorf("empty filter: got %v, want no clauses", filter)
	}
}

func TestAssetFilterOptions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		f    AssetFilter
		want bson.M
	}{
		{
			name: "available",
			f:    AssetFilter{Email: "hr@example.com", FilterOption: "available"},
			want: bson.M{"email": "hr@example.com", "productQuantity": bson.M{"$gt": 0}},
		},
		{
			name: "stock-out",
			f:    AssetFilter{FilterOption: "stock-out"},
			want: bson.M{"productQuantity": 0},
		},
		{
			name: "type name",
			f:    AssetFilter{FilterOption: "returnable"},
			want: bson.M{"productType": "returnable"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			filter, _ := tt.f.Query()
			if !reflect.DeepEqual(filter, tt.want) {
				t.Errorf("got %v, want %v", filter, tt.want)
			}
		})
	}
}

func TestAssetFilterSearchEscapesRegex(t *testing.T) {
	t.Parallel()
	filter, _ := AssetFilter{Search: "USB-C (2m)"}.Query()
	clause, ok := filter["productName"].(bson.M)
	if !ok {
		t.Fatalf("productName clause missing: %v", filter)
	}
	if clause["$regex"] != `USB-C \(2m\)` {
		t.Errorf("regex: got %v", clause["$regex"])
	}
	if clause["$options"] != "i" {
		t.Errorf("options: got %v, want i", clause["$options"])
	}
}

func TestAssetFilterSort(t *testing.T) {
	t.Parallel()
	_, opts := AssetFilter{SortOption: "desc"}.Query()
	sort, ok := opts.Sort.(bson.D)
	if !ok || len(sort) != 1 {
		t.Fatalf("sort: got %v", opts.Sort)
	}
	if sort[0].Key != "productQuantity" || sort[0].Value != -1 {
		t.Errorf("sort: got %v, want productQuantity desc", sort[0])
	}

	_, opts = AssetFilter{SortOption: "asc"}.Query()
	sort = opts.Sort.(bson.D)
	if sort[0].Key != "productQuantity" || sort[0].Value != 1 {
		t.Errorf("sort: got %v, want productQuantity asc", sort[0])
	}
}
