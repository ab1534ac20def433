package reports

import (
	"time"

	"go-hms/internal/features/payment"
	"go-hms/internal/features/room"
	"go-hms/internal/features/tenant"
)

// OverviewReport compares the current calendar month against the previous one.
type OverviewReport struct {
	Tenants  OverviewTenants  `json:"tenants"`
	Rooms    OverviewRooms    `json:"rooms"`
	Revenue  OverviewRevenue  `json:"revenue"`
	Payments OverviewPayments `json:"payments"`
	Tickets  OverviewTickets  `json:"tickets"`
}

type OverviewTenants struct {
	Active       int64 `json:"active"`
	NewThisMonth int64 `json:"newThisMonth"`
}

type OverviewRooms struct {
	TotalCapacity  int64 `json:"totalCapacity"`
	TotalOccupancy int64 `json:"totalOccupancy"`
	OccupancyRate  int   `json:"occupancyRate"`
	Available      int64 `json:"available"`
	Maintenance    int64 `json:"maintenance"`
}

type OverviewRevenue struct {
	Monthly        float64 `json:"monthly"`
	LastMonth      float64 `json:"lastMonth"`
	Growth         int     `json:"growth"`
	CollectionRate int     `json:"collectionRate"`
}

type OverviewPayments struct {
	PendingCount  int64   `json:"pendingCount"`
	PendingAmount float64 `json:"pendingAmount"`
}

type OverviewTickets struct {
	Open              int64 `json:"open"`
	ResolvedThisMonth int64 `json:"resolvedThisMonth"`
}

// MonthBucket is one calendar month of the financial report,
// ordered oldest to newest.
type MonthBucket struct {
	Month   string  `json:"month"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Profit  float64 `json:"profit"`
}

type FinancialReport struct {
	Months   []MonthBucket     `json:"months"`
	ByMethod []payment.GroupSum `json:"byMethod"`
	ByType   []payment.GroupSum `json:"byType"`
}

// TypeOccupancy is the per room-type rollup of the occupancy report.
type TypeOccupancy struct {
	Type           string `json:"type"`
	Total          int64  `json:"total"`
	Occupied       int64  `json:"occupied"`
	Available      int64  `json:"available"`
	Maintenance    int64  `json:"maintenance"`
	TotalCapacity  int64  `json:"totalCapacity"`
	TotalOccupancy int64  `json:"totalOccupancy"`
}

type OccupancyReport struct {
	ByType []TypeOccupancy `json:"byType"`
	Rooms  []room.Room     `json:"rooms"`
}

type ActivityReport struct {
	Active       int64                   `json:"active"`
	Inactive     int64                   `json:"inactive"`
	NewThisMonth int64                   `json:"newThisMonth"`
	Recent       []tenant.TenantWithRoom `json:"recent"`
}

type TenantDataReport struct {
	Tenants     []tenant.TenantWithRoom `json:"tenants"`
	GeneratedAt time.Time               `json:"generatedAt"`
}
