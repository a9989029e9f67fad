package service

import (
	"github.com/mispadamapur/school-api/internal/models"
	"github.com/mispadamapur/school-api/internal/repository"
)

// StatsService aggregates the counters shown on the admin dashboard.
type StatsService struct {
	appRepo   *repository.ApplicationRepository
	msgRepo   *repository.ContactMessageRepository
	eventRepo *repository.EventRepository
}

func NewStatsService(
	appRepo *repository.ApplicationRepository,
	msgRepo *repository.ContactMessageRepository,
	eventRepo *repository.EventRepository,
) *StatsService {
	return &StatsService{appRepo: appRepo, msgRepo: msgRepo, eventRepo: eventRepo}
}

// DashboardStats holds the admin overview counters.
type DashboardStats struct {
	TotalApplications    int `json:"totalApplications"`
	PendingApplications  int `json:"pendingApplications"`
	ApprovedApplications int `json:"approvedApplications"`
	RejectedApplications int `json:"rejectedApplications"`
	UnreadMessages       int `json:"unreadMessages"`
	TotalEvents          int `json:"totalEvents"`
}

// Dashboard collects the overview counters in one call.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	counts, err := s.appRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	unread, err := s.msgRepo.CountUnread()
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.Count()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		PendingApplications:  counts[models.StatusPending],
		ApprovedApplications: counts[models.StatusApproved],
		RejectedApplications: counts[models.StatusRejected],
		UnreadMessages:       unread,
		TotalEvents:          events,
	}
	stats.TotalApplications = stats.PendingApplications + stats.ApprovedApplications + stats.RejectedApplications
	return stats, nil
}
