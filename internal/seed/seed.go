// Package seed creates the bootstrap super admin and a handful of default
// academic rows on an empty database. Every step is idempotent: rows that
// already exist are left alone and errors are collected rather than failing
// startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/app/repositories"
	"github.com/rahulj/sdms/internal/app/repositories/roles"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
	"github.com/rahulj/sdms/internal/pkg/idgen"
)

const (
	superAdminUsername = "superadmin"
	superAdminEmail    = "superadmin@school.local"
)

// CreateDefaultData seeds the bootstrap super admin and default classes and
// subjects if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := roles.NewAdminRepository(dbPool)
	identityRepo := repositories.NewIdentityRepository(dbPool)
	classRepo := repositories.NewClassRepository(dbPool)
	subjectRepo := repositories.NewSubjectRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// The super admin's identity is linked ahead of its profile so the
	// directory can resolve the bootstrap address even on a partial seed.
	if err := identityRepo.Upsert(ctx, superAdminEmail, models.RoleSuperAdmin, ""); err != nil {
		lgr.Error().Err(err).Msg("Error seeding super admin identity")
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := adminRepo.GetByUID(ctx, models.PrefixAdmin+"_001"); errors.Is(err, apperrors.ErrAdminNotFound) {
		existing, err := adminRepo.ListUIDs(ctx)
		if err != nil {
			lgr.Error().Err(err).Msg("Error listing admin display ids")
			return errors.Join(finalErr, err)
		}

		superAdmin := &models.Admin{
			AdminUID: idgen.Next(models.PrefixAdmin, existing),
			Name:     "Super Admin",
			Username: superAdminUsername,
			Role:     models.RoleSuperAdmin,
			Email:    superAdminEmail,
		}
		if err := adminRepo.Create(ctx, superAdmin); err != nil && !errors.Is(err, apperrors.ErrDisplayIDExists) {
			lgr.Error().Err(err).Msg("Error creating super admin")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			if err := identityRepo.Upsert(ctx, superAdminEmail, models.RoleSuperAdmin, superAdmin.AdminUID); err != nil {
				lgr.Error().Err(err).Msg("Error linking super admin identity")
				finalErr = errors.Join(finalErr, err)
			}
			lgr.Info().Str("uid", superAdmin.AdminUID).Msg("Super admin created")
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking for super admin")
		finalErr = errors.Join(finalErr, err)
	}

	// Default classes.
	classes, err := classRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing classes for seeding")
		return errors.Join(finalErr, err)
	}
	if len(classes) == 0 {
		year := 2026
		for _, name := range []string{"10-A", "10-B"} {
			class := &models.Class{Name: name, AcademicYear: &year}
			if err := classRepo.Create(ctx, class); err != nil {
				lgr.Error().Err(err).Str("class", name).Msg("Error seeding class")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// Default subjects.
	for _, name := range []string{"Mathematics", "Science", "English"} {
		if _, err := subjectRepo.GetByName(ctx, name); errors.Is(err, apperrors.ErrSubjectNotFound) {
			if err := subjectRepo.Create(ctx, &models.Subject{Name: name}); err != nil {
				lgr.Error().Err(err).Str("subject", name).Msg("Error seeding subject")
				finalErr = errors.Join(finalErr, err)
			}
		} else if err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation complete")
	}
	return finalErr
}
