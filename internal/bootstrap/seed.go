package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Blawness/pkp-studio/internal/config"
	"github.com/Blawness/pkp-studio/internal/domain/entity"
	"github.com/Blawness/pkp-studio/internal/infra/persistence"
	"github.com/Blawness/pkp-studio/internal/infra/security"
	"github.com/go-faker/faker/v4"
	"github.com/lib/pq"
)

var seedSuratHak = []string{"HM", "HGB", "HGU", "HP"}

// Seed inserts a default admin account plus count faker users and count
// certificates. Rows reuse the schema's unique keys, so seeding is meant for
// empty databases.
func Seed(ctx context.Context, cfg config.Config, count, batchSize int) error {
	if count <= 0 {
		count = 10
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	conn, err := persistence.New(ctx, persistence.Config{
		WriteDSN:          cfg.Database.WriteDSN,
		ReadDSN:           cfg.Database.ReadDSN,
		MaxConns:          cfg.Database.MaxConns,
		MinConns:          cfg.Database.MinConns,
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	pingCtx := ctx
	if cfg.Database.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
		defer cancel()
	}
	if err := conn.Ping(pingCtx); err != nil {
		return err
	}

	hasher := security.NewHasher(cfg.Auth.BcryptCost)
	adminHash, err := hasher.Hash("admin123")
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Administrator",
		Email:    "admin@pkp.local",
		Role:     entity.RoleAdmin,
		Password: adminHash,
	}
	if err := conn.Write(ctx).Create(&admin).Error; err != nil {
		return err
	}

	userHash, err := hasher.Hash("password123")
	if err != nil {
		return err
	}
	users := make([]entity.User, 0, batchSize)
	for i := 0; i < count; i++ {
		users = append(users, entity.User{
			Name:     fmt.Sprintf("%s %s", faker.FirstName(), faker.LastName()),
			Email:    fmt.Sprintf("seed-%d-%s", i, faker.Email()),
			Role:     entity.RoleUser,
			Password: userHash,
		})
		if len(users) == batchSize {
			if err := conn.Write(ctx).CreateInBatches(&users, batchSize).Error; err != nil {
				return err
			}
			users = users[:0]
		}
	}
	if len(users) > 0 {
		if err := conn.Write(ctx).CreateInBatches(&users, batchSize).Error; err != nil {
			return err
		}
	}

	baseDate := time.Now().UTC().AddDate(-1, 0, 0)
	certs := make([]entity.Certificate, 0, batchSize)
	for i := 0; i < count; i++ {
		issued := baseDate.AddDate(0, 0, rand.Intn(365))
		certs = append(certs, entity.Certificate{
			Kode:               fmt.Sprintf("K-%04d", i+1),
			NamaPemegang:       pq.StringArray{fmt.Sprintf("%s %s", faker.FirstName(), faker.LastName())},
			SuratHak:           seedSuratHak[rand.Intn(len(seedSuratHak))],
			NoSertifikat:       fmt.Sprintf("SRT-%06d", i+1),
			LokasiTanah:        faker.Sentence(),
			LuasM2:             50 + rand.Intn(5000),
			TglTerbit:          issued,
			SuratUkur:          fmt.Sprintf("SU-%06d", i+1),
			NIB:                fmt.Sprintf("NIB-%08d", i+1),
			PendaftaranPertama: issued,
		})
		if len(certs) == batchSize {
			if err := conn.Write(ctx).CreateInBatches(&certs, batchSize).Error; err != nil {
				return err
			}
			certs = certs[:0]
		}
	}
	if len(certs) > 0 {
		if err := conn.Write(ctx).CreateInBatches(&certs, batchSize).Error; err != nil {
			return err
		}
	}

	log.Infof("bootstrap: seeded 1 admin, %d users, %d certificates", count, count)
	return nil
}
