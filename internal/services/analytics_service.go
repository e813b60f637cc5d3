package services

import (
	"log"

	"storefront/internal/metrics"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/useragent"
)

// AnalyticsService records storefront visits. Device, browser and OS
// are derived server-side from the request's own User-Agent header;
// the caller contributes nothing but the path it is viewing.
type AnalyticsService struct {
	repo repositories.VisitRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo repositories.VisitRepository) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
	}
}

// RecordVisit classifies the user agent and inserts one visit row. The
// handler calls this fire-and-forget; a failed insert is logged and the
// visitor never sees it.
func (s *AnalyticsService) RecordVisit(userAgent, ip, path string) error {
	info := useragent.Parse(userAgent)
	visit := &models.Visit{
		Path:    path,
		Device:  info.Device,
		Browser: info.Browser,
		OS:      info.OS,
		IP:      ip,
	}
	if err := s.repo.Create(visit); err != nil {
		log.Printf("Failed to record visit: %v", err)
		return err
	}
	metrics.VisitsRecordedTotal.Inc()
	return nil
}
