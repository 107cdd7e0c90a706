package repositories

import (
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// StatsRepository - read-only агрегаты для админки.
// Каждый вызов пересчитывает из исходных строк, без кеша.
type StatsRepository interface {
	Overview(since *time.Time) (*OverviewStats, error)
	Revenue(since *time.Time) (*RevenueStats, error)
	Users(since *time.Time) (*UserStats, error)
	Jobs(since *time.Time) (*JobStats, error)
}

type OverviewStats struct {
	TotalUsers   int64            `json:"total_users"`
	UsersByRole  map[string]int64 `json:"users_by_role"`
	BlockedUsers int64            `json:"blocked_users"`
	TotalJobs    int64            `json:"total_jobs"`
	OpenJobs     int64            `json:"open_jobs"`
	HiddenJobs   int64            `json:"hidden_jobs"`
	PendingFlags int64            `json:"pending_flags"`
	OpenTickets  int64            `json:"open_tickets"`
	NewUsers     int64            `json:"new_users"`
	NewJobs      int64            `json:"new_jobs"`
}

type RevenueStats struct {
	TotalAmount     float64 `json:"total_amount"`
	TotalCommission float64 `json:"total_commission"`
	PaymentCount    int64   `json:"payment_count"`
}

type UserStats struct {
	Registrations map[string]int64 `json:"registrations_by_role"`
	Blocked       int64            `json:"blocked"`
	Total         int64            `json:"total"`
}

type JobStats struct {
	ByStatus map[string]int64 `json:"by_status"`
	Hidden   int64            `json:"hidden"`
	Total    int64            `json:"total"`
}

type StatsRepositoryImpl struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

// sinceScope добавляет условие по created_at, если период задан
func sinceScope(q *gorm.DB, since *time.Time) *gorm.DB {
	if since != nil {
		return q.Where("created_at >= ?", *since)
	}
	return q
}

func (r *StatsRepositoryImpl) Overview(since *time.Time) (*OverviewStats, error) {
	var stats OverviewStats

	if err := r.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("is_blocked = ?", true).Count(&stats.BlockedUsers).Error; err != nil {
		return nil, err
	}

	stats.UsersByRole = make(map[string]int64)
	type roleCount struct {
		Role  string
		Count int64
	}
	var roleCounts []roleCount
	if err := r.db.Model(&models.User{}).Select("role, COUNT(*) as count").Group("role").Find(&roleCounts).Error; err != nil {
		return nil, err
	}
	for _, rc := range roleCounts {
		stats.UsersByRole[rc.Role] = rc.Count
	}

	if err := r.db.Model(&models.Job{}).Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Job{}).Where("status = ? AND is_hidden = ?", models.JobStatusOpen, false).Count(&stats.OpenJobs).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Job{}).Where("is_hidden = ?", true).Count(&stats.HiddenJobs).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.JobFlag{}).Where("status = ?", models.FlagStatusPending).Count(&stats.PendingFlags).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.SupportTicket{}).
		Where("status IN ?", []models.TicketStatus{models.TicketStatusOpen, models.TicketStatusInProgress, models.TicketStatusEscalated}).
		Count(&stats.OpenTickets).Error; err != nil {
		return nil, err
	}

	if err := sinceScope(r.db.Model(&models.User{}), since).Count(&stats.NewUsers).Error; err != nil {
		return nil, err
	}
	if err := sinceScope(r.db.Model(&models.Job{}), since).Count(&stats.NewJobs).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *StatsRepositoryImpl) Revenue(since *time.Time) (*RevenueStats, error) {
	var stats RevenueStats

	query := r.db.Model(&models.Payment{}).Where("status = ?", models.PaymentStatusPaid)
	if since != nil {
		query = query.Where("paid_at >= ?", *since)
	}

	row := struct {
		Amount     float64
		Commission float64
		Count      int64
	}{}
	err := query.Select("COALESCE(SUM(amount),0) as amount, COALESCE(SUM(commission),0) as commission, COUNT(*) as count").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats.TotalAmount = row.Amount
	stats.TotalCommission = row.Commission
	stats.PaymentCount = row.Count
	return &stats, nil
}

func (r *StatsRepositoryImpl) Users(since *time.Time) (*UserStats, error) {
	var stats UserStats
	stats.Registrations = make(map[string]int64)

	type roleCount struct {
		Role  string
		Count int64
	}
	var roleCounts []roleCount
	if err := sinceScope(r.db.Model(&models.User{}), since).
		Select("role, COUNT(*) as count").Group("role").Find(&roleCounts).Error; err != nil {
		return nil, err
	}
	for _, rc := range roleCounts {
		stats.Registrations[rc.Role] = rc.Count
		stats.Total += rc.Count
	}

	if err := sinceScope(r.db.Model(&models.User{}), since).
		Where("is_blocked = ?", true).Count(&stats.Blocked).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepositoryImpl) Jobs(since *time.Time) (*JobStats, error) {
	var stats JobStats
	stats.ByStatus = make(map[string]int64)

	type statusCount struct {
		Status string
		Count  int64
	}
	var statusCounts []statusCount
	if err := sinceScope(r.db.Model(&models.Job{}), since).
		Select("status, COUNT(*) as count").Group("status").Find(&statusCounts).Error; err != nil {
		return nil, err
	}
	for _, sc := range statusCounts {
		stats.ByStatus[sc.Status] = sc.Count
		stats.Total += sc.Count
	}

	if err := sinceScope(r.db.Model(&models.Job{}), since).
		Where("is_hidden = ?", true).Count(&stats.Hidden).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
