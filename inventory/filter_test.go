// inventory/filter_test.go
package inventory

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestRequestFilterEmpty(t *testing.T) {
	t.Parallel()
	got := RequestFilter{}.BSON()
	if len(got) != 0 {
		t.Errorf("empty filter: got %v, want no clauses", got)
	}
}

func TestRequestFilterExactFields(t *testing.T) {
	t.Parallel()
	f := RequestFilter{
		RequesterEmail: "emp@example.com",
		HREmail:        "hr@example.com",
		Status:         StatusPending,
		ProductType:    "returnable",
	}
	want := bson.M{
		"requesterEmail":          "emp@example.com",
		"requesterAffiliatedWith": "hr@example.com",
		"status":                  StatusPending,
		"productType":             "returnable",
	}
	if got := f.BSON(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRequestFilterProductNameSubstring(t *testing.T) {
	t.Parallel()
	got := RequestFilter{ProductName: "Mac (Pro)"}.BSON()
	clause, ok := got["productName"].(bson.M)
	if !ok {
		t.Fatalf("productName clause missing: %v", got)
	}
	if clause["$options"] != "i" {
		t.Errorf("options: got %v, want i", clause["$options"])
	}
	// Regex metacharacters in the user input must be escaped.
	if clause["$regex"] != `Mac \(Pro\)` {
		t.Errorf("regex: got %v", clause["$regex"])
	}
}

func TestRequestFilterSearchMatchesNameOrEmail(t *testing.T) {
	t.Parallel()
	got := RequestFilter{Search: "ali"}.BSON()
	or, ok := got["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("$or clause: got %v", got)
	}
	if _, ok := or[0]["requesterName"]; !ok {
		t.Errorf("first branch should match requesterName: %v", or[0])
	}
	if _, ok := or[1]["requesterEmail"]; !ok {
		t.Errorf("second branch should match requesterEmail: %v", or[1])
	}
}
