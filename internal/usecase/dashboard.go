package usecase

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/Blawness/pkp-studio/internal/domain/service"
	"github.com/sirupsen/logrus"
)

type Dashboard struct {
	certs repository.CertificateRepository
	users repository.UserRepository
	logs  repository.ActivityLogRepository
	log   *logrus.Logger
}

var _ service.DashboardService = (*Dashboard)(nil)

func NewDashboard(certs repository.CertificateRepository, users repository.UserRepository, logs repository.ActivityLogRepository, log *logrus.Logger) *Dashboard {
	return &Dashboard{certs: certs, users: users, logs: logs, log: log}
}

func (u *Dashboard) Stats(ctx context.Context) (service.DashboardStats, error) {
	var stats service.DashboardStats
	var err error

	if stats.CertificatesCount, err = u.certs.Count(ctx); err != nil {
		u.log.WithError(err).Error("dashboard: count certificates failed")
		return service.DashboardStats{}, err
	}
	if stats.UsersCount, err = u.users.Count(ctx); err != nil {
		u.log.WithError(err).Error("dashboard: count users failed")
		return service.DashboardStats{}, err
	}
	if stats.LogsCount, err = u.logs.Count(ctx); err != nil {
		u.log.WithError(err).Error("dashboard: count logs failed")
		return service.DashboardStats{}, err
	}
	if stats.RecentCertificates, err = u.certs.RecentByTglTerbit(ctx, 5); err != nil {
		u.log.WithError(err).Error("dashboard: recent certificates failed")
		return service.DashboardStats{}, err
	}
	if stats.CertificateTypeCounts, err = u.certs.CountBySuratHak(ctx); err != nil {
		u.log.WithError(err).Error("dashboard: certificate type counts failed")
		return service.DashboardStats{}, err
	}
	if stats.UserRoleCounts, err = u.users.CountByRole(ctx); err != nil {
		u.log.WithError(err).Error("dashboard: user role counts failed")
		return service.DashboardStats{}, err
	}
	return stats, nil
}
