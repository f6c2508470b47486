package models

type Customer struct {
	ID     int64
	Name   string
	Mobile string
}
