package service

import (
	"context"

	"github.com/Blawness/pkp-studio/internal/domain/entity"
)

type AuthService interface {
	// Login verifies credentials and returns the user plus a signed token.
	Login(ctx context.Context, email, password string) (entity.User, string, error)
}

type DashboardStats struct {
	CertificatesCount     int64                `json:"certificatesCount"`
	UsersCount            int64                `json:"usersCount"`
	LogsCount             int64                `json:"logsCount"`
	RecentCertificates    []entity.Certificate `json:"recentCertificates"`
	CertificateTypeCounts map[string]int64     `json:"certificateTypeCounts"`
	UserRoleCounts        map[string]int64     `json:"userRoleCounts"`
}

type DashboardService interface {
	Stats(ctx context.Context) (DashboardStats, error)
}
