package models

// MenuItem is a row of the menu table. Its position in a listing is not stored;
// it is the item's rank in ascending ID order at the time of the listing.
type MenuItem struct {
	ID    int64
	Name  string
	Price int64
}
