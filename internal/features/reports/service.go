package reports

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"time"

	"go-hms/internal/features/expense"
	"go-hms/internal/features/payment"
	"go-hms/internal/features/room"
	"go-hms/internal/features/tenant"
	"go-hms/internal/features/ticket"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultMonths = 6
	maxMonths     = 24
	recentTenants = 10
)

type ReportsService interface {
	Overview(ctx context.Context) (*OverviewReport, error)
	Financial(ctx context.Context, months int) (*FinancialReport, error)
	Occupancy(ctx context.Context) (*OccupancyReport, error)
	TenantActivity(ctx context.Context) (*ActivityReport, error)
	TenantData(ctx context.Context) (*TenantDataReport, error)
	ExportTenantData(ctx context.Context) ([]byte, error)
}

type ReportsServiceImpl struct {
	RoomRepo    room.RoomRepository
	TenantRepo  tenant.TenantRepository
	PaymentRepo payment.PaymentRepository
	TicketRepo  ticket.TicketRepository
	ExpenseRepo expense.ExpenseRepository
	Now         func() time.Time
}

func NewReportsService(
	roomRepo room.RoomRepository,
	tenantRepo tenant.TenantRepository,
	paymentRepo payment.PaymentRepository,
	ticketRepo ticket.TicketRepository,
	expenseRepo expense.ExpenseRepository,
) ReportsService {
	return &ReportsServiceImpl{
		RoomRepo:    roomRepo,
		TenantRepo:  tenantRepo,
		PaymentRepo: paymentRepo,
		TicketRepo:  ticketRepo,
		ExpenseRepo: expenseRepo,
		Now:         time.Now,
	}
}

// monthStart returns the first instant of t's calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func roundPercent(numerator, denominator float64) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(numerator / denominator * 100))
}

func (s *ReportsServiceImpl) Overview(ctx context.Context) (*OverviewReport, error) {
	now := s.Now()
	curStart := monthStart(now)
	nextStart := curStart.AddDate(0, 1, 0)
	prevStart := curStart.AddDate(0, -1, 0)

	report := &OverviewReport{}

	active, err := s.TenantRepo.Count(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	newThisMonth, err := s.TenantRepo.Count(ctx, tenant.NewSinceFilter(curStart))
	if err != nil {
		return nil, err
	}
	report.Tenants = OverviewTenants{Active: active, NewThisMonth: newThisMonth}

	rooms, err := s.RoomRepo.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, r := range rooms {
		report.Rooms.TotalCapacity += int64(r.Capacity)
		report.Rooms.TotalOccupancy += int64(r.Occupancy)
		switch r.Status {
		case room.StatusAvailable:
			report.Rooms.Available++
		case room.StatusMaintenance:
			report.Rooms.Maintenance++
		}
	}
	report.Rooms.OccupancyRate = roundPercent(float64(report.Rooms.TotalOccupancy), float64(report.Rooms.TotalCapacity))

	monthly, err := s.PaymentRepo.SumCompletedBetween(ctx, curStart, nextStart)
	if err != nil {
		return nil, err
	}
	lastMonth, err := s.PaymentRepo.SumCompletedBetween(ctx, prevStart, curStart)
	if err != nil {
		return nil, err
	}
	pendingCount, pendingAmount, err := s.PaymentRepo.PendingTotals(ctx)
	if err != nil {
		return nil, err
	}

	growth := 0
	if lastMonth != 0 {
		growth = int(math.Round((monthly - lastMonth) / lastMonth * 100))
	}
	collectionRate := 100
	if monthly+pendingAmount != 0 {
		collectionRate = int(math.Round(monthly / (monthly + pendingAmount) * 100))
	}
	report.Revenue = OverviewRevenue{
		Monthly:        monthly,
		LastMonth:      lastMonth,
		Growth:         growth,
		CollectionRate: collectionRate,
	}
	report.Payments = OverviewPayments{PendingCount: pendingCount, PendingAmount: pendingAmount}

	open, err := s.TicketRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	resolved, err := s.TicketRepo.CountResolvedBetween(ctx, curStart, nextStart)
	if err != nil {
		return nil, err
	}
	report.Tickets = OverviewTickets{Open: open, ResolvedThisMonth: resolved}

	return report, nil
}

func (s *ReportsServiceImpl) Financial(ctx context.Context, months int) (*FinancialReport, error) {
	if months <= 0 {
		months = defaultMonths
	}
	if months > maxMonths {
		months = maxMonths
	}

	now := s.Now()
	curStart := monthStart(now)

	report := &FinancialReport{Months: make([]MonthBucket, 0, months)}

	// Oldest month first, current month last. Queries are sequential;
	// cardinalities are small enough that latency is dominated by the
	// store round trips anyway.
	for i := months - 1; i >= 0; i-- {
		start := curStart.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		income, err := s.PaymentRepo.SumCompletedBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		spent, err := s.ExpenseRepo.SumBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}

		report.Months = append(report.Months, MonthBucket{
			Month:   start.Format("2006-01"),
			Income:  income,
			Expense: spent,
			Profit:  income - spent,
		})
	}

	nextStart := curStart.AddDate(0, 1, 0)
	byMethod, err := s.PaymentRepo.GroupCompletedBetween(ctx, "method", curStart, nextStart)
	if err != nil {
		return nil, err
	}
	byType, err := s.PaymentRepo.GroupCompletedBetween(ctx, "type", curStart, nextStart)
	if err != nil {
		return nil, err
	}
	report.ByMethod = byMethod
	report.ByType = byType

	return report, nil
}

func (s *ReportsServiceImpl) Occupancy(ctx context.Context) (*OccupancyReport, error) {
	rooms, err := s.RoomRepo.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*TypeOccupancy)
	order := []string{}
	for _, r := range rooms {
		entry, ok := byType[r.Type]
		if !ok {
			entry = &TypeOccupancy{Type: r.Type}
			byType[r.Type] = entry
			order = append(order, r.Type)
		}
		entry.Total++
		entry.TotalCapacity += int64(r.Capacity)
		entry.TotalOccupancy += int64(r.Occupancy)
		switch r.Status {
		case room.StatusOccupied:
			entry.Occupied++
		case room.StatusAvailable:
			entry.Available++
		case room.StatusMaintenance:
			entry.Maintenance++
		}
	}

	report := &OccupancyReport{Rooms: rooms, ByType: make([]TypeOccupancy, 0, len(order))}
	for _, t := range order {
		report.ByType = append(report.ByType, *byType[t])
	}
	return report, nil
}

func (s *ReportsServiceImpl) TenantActivity(ctx context.Context) (*ActivityReport, error) {
	now := s.Now()

	active, err := s.TenantRepo.Count(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	inactive, err := s.TenantRepo.Count(ctx, bson.M{"active": false})
	if err != nil {
		return nil, err
	}
	newThisMonth, err := s.TenantRepo.Count(ctx, tenant.NewSinceFilter(monthStart(now)))
	if err != nil {
		return nil, err
	}

	recent, err := s.TenantRepo.FindRecent(ctx, recentTenants)
	if err != nil {
		return nil, err
	}
	populated, err := s.populateRooms(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &ActivityReport{
		Active:       active,
		Inactive:     inactive,
		NewThisMonth: newThisMonth,
		Recent:       populated,
	}, nil
}

func (s *ReportsServiceImpl) TenantData(ctx context.Context) (*TenantDataReport, error) {
	tenants, err := s.TenantRepo.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}
	populated, err := s.populateRooms(ctx, tenants)
	if err != nil {
		return nil, err
	}

	return &TenantDataReport{
		Tenants:     populated,
		GeneratedAt: s.Now(),
	}, nil
}

// ExportTenantData renders the full roster as an xlsx workbook.
func (s *ReportsServiceImpl) ExportTenantData(ctx context.Context) ([]byte, error) {
	report, err := s.TenantData(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Tenants"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"First Name", "Last Name", "Email", "Phone", "Room", "Rent", "Move In", "Security Deposit", "Active"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, t := range report.Tenants {
		values := []interface{}{t.FirstName, t.LastName, t.Email, t.Phone, "", 0.0, "", t.SecurityDeposit, t.Active}
		if t.RoomDetail != nil {
			values[4] = t.RoomDetail.Number
			values[5] = t.RoomDetail.Rent
		}
		if t.MoveInDate != nil {
			values[6] = t.MoveInDate.Format("2006-01-02")
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReportsServiceImpl) populateRooms(ctx context.Context, tenants []tenant.Tenant) ([]tenant.TenantWithRoom, error) {
	ids := make([]primitive.ObjectID, 0, len(tenants))
	seen := make(map[primitive.ObjectID]bool)
	for _, t := range tenants {
		if t.Room != nil && !seen[*t.Room] {
			seen[*t.Room] = true
			ids = append(ids, *t.Room)
		}
	}

	roomsByID := make(map[primitive.ObjectID]room.Room)
	if len(ids) > 0 {
		rooms, err := s.RoomRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, r := range rooms {
			roomsByID[r.ID] = r
		}
	}

	result := make([]tenant.TenantWithRoom, 0, len(tenants))
	for _, t := range tenants {
		entry := tenant.TenantWithRoom{Tenant: t}
		if t.Room != nil {
			if r, ok := roomsByID[*t.Room]; ok {
				entry.RoomDetail = &tenant.RoomSummary{
					ID:     r.ID,
					Number: r.Number,
					Type:   r.Type,
					Rent:   r.Rent,
				}
			}
		}
		result = append(result, entry)
	}
	return result, nil
}
