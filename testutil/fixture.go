// Package testutil provides the shared dataset fixture used by tests
// across the repository: a small crew manifest exercising nested objects,
// array-of-objects fan-out, primitive arrays, nulls, and mixed types.
package testutil

import (
	"testing"

	"github.com/jsonlens/jsonlens/jsonlens"
)

// CrewJSON is the raw fixture. Shape notes:
//   - address is a nested object (leaf paths address.city, address.zip)
//   - orders is an array of objects (fan-out on orders.sku, orders.qty)
//   - tags is a primitive array (a single leaf)
//   - age is a number on most records but a string on Quinn
//   - Quinn's empty orders array makes "orders" itself a leaf column,
//     alongside the fanned-out orders.sku / orders.qty from the others
//   - nickname is null on Ray and absent elsewhere
const CrewJSON = `[
  {
    "name": "Ada",
    "age": 36,
    "address": {"city": "London", "zip": "N1"},
    "orders": [{"sku": "alpha", "qty": 2}, {"sku": "beta", "qty": 1}],
    "tags": ["lead", "founder"]
  },
  {
    "name": "Grace",
    "age": 45,
    "address": {"city": "Arlington", "zip": "22201"},
    "orders": [{"sku": "gamma", "qty": 5}],
    "tags": []
  },
  {
    "name": "Quinn",
    "age": "unknown",
    "address": {"city": "Oslo", "zip": null},
    "orders": [],
    "tags": ["intern"]
  },
  {
    "name": "Ray",
    "age": 28,
    "nickname": null,
    "address": {"city": "Lisbon", "zip": "1100"},
    "orders": [{"sku": "alpha", "qty": 1}],
    "tags": ["ops"]
  }
]`

// CrewSchema is the column order discovery must produce for CrewJSON.
var CrewSchema = []string{
	"name",
	"age",
	"address.city",
	"address.zip",
	"orders.sku",
	"orders.qty",
	"tags",
	"orders",
	"nickname",
}

// LoadCrew returns a store loaded with the crew fixture and its dataset.
func LoadCrew(t *testing.T) (*jsonlens.Store, *jsonlens.Dataset) {
	t.Helper()
	store := jsonlens.NewStore(nil)
	dataset, err := store.Load([]byte(CrewJSON))
	if err != nil {
		t.Fatalf("failed to load crew fixture: %v", err)
	}
	return store, dataset
}
