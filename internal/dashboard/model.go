package dashboard

// TotalCounts are the headline numbers on the dashboard landing view.
type TotalCounts struct {
	Customers         int64 `json:"customers"`
	Providers         int64 `json:"providers"`
	PendingProviders  int64 `json:"pendingProviders"`
	AcceptedProviders int64 `json:"acceptedProviders"`
}

// Slice is one labelled bucket in a distribution.
type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// UserStats breaks the user base down by audience and skill class.
type UserStats struct {
	TotalUsers         int `json:"totalUsers"`
	Customers          int `json:"customers"`
	Providers          int `json:"providers"`
	SkilledProviders   int `json:"skilledProviders"`
	UnskilledProviders int `json:"unskilledProviders"`
	VerifiedProviders  int `json:"verifiedProviders"`
	NewToday           int `json:"newToday"`
}
