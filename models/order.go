package models

// OrderLine is one cart entry. LineTotal is UnitPrice * Quantity.
type OrderLine struct {
	ItemName  string
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

// Bill is the finalized snapshot of a customer's cart.
type Bill struct {
	CustomerName string
	Mobile       string
	Lines        []OrderLine
	Total        int64
}
