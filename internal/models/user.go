package models

// User is one row of the users table.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	IQ         int    `json:"iq"`
	BenchPress int    `json:"bench_press"`
}
