package entity

// EntityCounts holds per-table record counts for the dashboard
type EntityCounts struct {
	Patients     int64 `json:"patients"`
	Doctors      int64 `json:"doctors"`
	Nurses       int64 `json:"nurses"`
	Medicines    int64 `json:"medicines"`
	Beds         int64 `json:"beds"`
	CanteenItems int64 `json:"canteen_items"`
	Orders       int64 `json:"orders"`
	Bills        int64 `json:"bills"`
}

// BedOccupancy splits bed counts by availability
type BedOccupancy struct {
	Available int64 `json:"available"`
	Occupied  int64 `json:"occupied"`
}

// StockLevel is one point of the medicine stock chart
type StockLevel struct {
	MedicineID int    `json:"medicine_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}
