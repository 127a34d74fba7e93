package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestEmployeeRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(newTestDB(t))

	first := &entity.Employee{ID: uuid.New(), Matricule: "M001", Nom: "Rakoto", Prenom: "Jean", Civilite: entity.CiviliteMonsieur}
	second := &entity.Employee{ID: uuid.New(), Matricule: "M002", Nom: "Rabe", Prenom: "Aina", Civilite: entity.CiviliteMadame}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, first.ID, employees[0].ID)
	assert.Equal(t, second.ID, employees[1].ID)

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "M001", found.Matricule)

	found.EmploiOccupe = "Docker"
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Docker", updated.EmploiOccupe)

	affected, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	missing, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	affected, err = repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestEmployeeRepositoryDuplicateMatricule(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.Employee{ID: uuid.New(), Matricule: "M001", Nom: "A", Prenom: "B", Civilite: entity.CiviliteMonsieur}))

	err := repo.Create(ctx, &entity.Employee{ID: uuid.New(), Matricule: "M001", Nom: "C", Prenom: "D", Civilite: entity.CiviliteMadame})

	require.Error(t, err)
	assert.ErrorIs(t, err, &apperror.Error{Kind: apperror.KindDuplicateKey, Field: "matricule"})
}

func TestDoctorRepositoryDuplicateTelephone(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.Doctor{ID: uuid.New(), Nom: "Randria", Prenom: "Paul", Telephone: "0340000000", Role: entity.DoctorRoleMedecin}))

	err := repo.Create(ctx, &entity.Doctor{ID: uuid.New(), Nom: "Andry", Prenom: "Lova", Telephone: "0340000000", Role: entity.DoctorRoleInfirmier})

	assert.ErrorIs(t, err, &apperror.Error{Kind: apperror.KindDuplicateKey, Field: "telephone"})
}

func TestConsultationRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewConsultationRepository(newTestDB(t))

	duree := 3
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	consultation := &entity.Consultation{
		ID:         uuid.New(),
		EmployeID:  uuid.New(),
		EmployeNom: "Rakoto Jean",
		MedecinID:  uuid.New(),
		MedecinNom: "Randria Paul",
		Date:       time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Lieu:       entity.LieuPort,
		Cout:       decimal.NewNullDecimal(decimal.RequireFromString("125.50")),
		Repos:      entity.RestGrant{Accorde: true, Duree: &duree, DateDebut: &start, DateFin: &end, Motif: "grippe"},
	}
	require.NoError(t, repo.Create(ctx, consultation))

	found, err := repo.FindByID(ctx, consultation.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.LieuPort, found.Lieu)
	assert.True(t, found.Cout.Valid)
	assert.True(t, decimal.RequireFromString("125.50").Equal(found.Cout.Decimal))
	assert.True(t, found.Repos.Accorde)
	require.NotNil(t, found.Repos.Duree)
	assert.Equal(t, 3, *found.Repos.Duree)
	assert.Equal(t, "grippe", found.Repos.Motif)

	found.Repos = entity.RestGrant{}
	found.Cout = decimal.NullDecimal{}
	require.NoError(t, repo.Update(ctx, found))

	cleared, err := repo.FindByID(ctx, consultation.ID)
	require.NoError(t, err)
	assert.False(t, cleared.Repos.Accorde)
	assert.Nil(t, cleared.Repos.Duree)
	assert.False(t, cleared.Cout.Valid)
}

func TestUserAndCredentialRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	credentials := NewCredentialRepository(db)

	id := uuid.New()
	require.NoError(t, credentials.Create(ctx, &entity.Credential{UserID: id, Email: "admin@clinic.test", PasswordHash: "hash"}))
	require.NoError(t, users.Create(ctx, &entity.User{ID: id, Email: "admin@clinic.test", Nom: "Admin", Prenom: "Root", Role: entity.RoleAdmin}))

	count, err := users.CountByRole(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = credentials.Create(ctx, &entity.Credential{UserID: uuid.New(), Email: "admin@clinic.test", PasswordHash: "x"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateKey)

	require.NoError(t, credentials.UpdateEmail(ctx, id, "root@clinic.test"))
	credential, err := credentials.FindByEmail(ctx, "root@clinic.test")
	require.NoError(t, err)
	require.NotNil(t, credential)
	assert.Equal(t, id, credential.UserID)

	none, err := credentials.FindByEmail(ctx, "admin@clinic.test")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, credentials.Delete(ctx, id))
	gone, err := credentials.FindByUserID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestAuditLogRepositoryPaging(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAuditLogRepository(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.AuditLog{
			Action:   entity.AuditActionEmployeeCreate,
			Metadata: entity.JSON{"index": i},
		}))
	}

	logs, total, err := repo.FindAll(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 2)

	found, err := repo.FindByID(ctx, logs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.AuditActionEmployeeCreate, found.Action)

	missing, err := repo.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNewGormStoreWiresEveryRepository(t *testing.T) {
	store := NewGormStore(newTestDB(t))

	assert.NotNil(t, store.Employees)
	assert.NotNil(t, store.Doctors)
	assert.NotNil(t, store.Consultations)
	assert.NotNil(t, store.Users)
	assert.NotNil(t, store.Credentials)
	assert.NotNil(t, store.AuditLogs)
}
