package models

// DashboardStats feeds the back-office charts.
type DashboardStats struct {
	Trips        int            `json:"trips"`
	Users        int            `json:"users"`
	Reservations map[string]int `json:"reservations"`
	Revenue      []MonthRevenue `json:"revenue"`
}

type MonthRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}
