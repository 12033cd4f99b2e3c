package reportapimodels

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type JobHires struct {
	JobID    string `json:"job_id"`
	JobTitle string `json:"job_title"`
	Hires    int64  `json:"hires"`
}

type RevenueRow struct {
	Month      string  `json:"month"` // YYYY-MM
	Currency   string  `json:"currency"`
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
	Contracts  int64   `json:"contracts"`
}

type RevenueReport struct {
	Rows []RevenueRow `json:"rows"`
}
