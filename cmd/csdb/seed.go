package main

import (
	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/csdb"
)

// seed stores n records with random words as keys and sentences as values.
// Colliding keys overwrite each other, so db may end up with fewer than n
// new records.
func seed(db *csdb.DB, n int) error {
	for i := 0; i < n; i++ {
		k := faker.Word() + "-" + faker.Word()
		v := []byte(faker.Sentence())
		if err := db.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
