package usecase

import (
	"context"
	"strings"

	"clinic-admin/config"
	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/rules"
	"clinic-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	GetOfferableRoles(ctx context.Context) *dto.RolesResponse
	SeedAdmin(ctx context.Context, admin config.AdminConfig) (bool, error)
}

// TokenRevoker drops every live token of a user.
type TokenRevoker interface {
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

type userUsecase struct {
	log            *logrus.Logger
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
	snapshots      *service.SnapshotService
	auditService   service.AuditService
	tokens         TokenRevoker
}

// NewUserUsecase builds the user usecase. tokens may be nil, in which case a
// deleted user's tokens simply expire.
func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	credentialRepo repository.CredentialRepository,
	snapshots *service.SnapshotService,
	auditService service.AuditService,
	tokens TokenRevoker,
) UserUsecase {
	return &userUsecase{
		log:            log,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		snapshots:      snapshots,
		auditService:   auditService,
		tokens:         tokens,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.UserRole(req.Role)
	if !u.canAssign(ctx, role) {
		return nil, ErrForbiddenRole
	}

	if err := rules.Passwords(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:     uuid.New(),
		Email:  normalizeEmail(req.Email),
		Nom:    req.Nom,
		Prenom: req.Prenom,
		Role:   role,
	}
	if err := rules.User(u.snapshots.Users.Latest().Records, user); err != nil {
		return nil, err
	}

	if err := u.register(ctx, user, req.Password); err != nil {
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, actorID(ctx), entity.AuditActionUserCreate, "user", user.ID.String(), user)
	u.snapshots.NotifyChanged(ctx, entity.KindUser)

	return converter.UserToResponse(user), nil
}

// register issues the credential first, then the user record. A failed user
// write removes the credential again.
func (u *userUsecase) register(ctx context.Context, user *entity.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	credential := &entity.Credential{
		UserID:       user.ID,
		Email:        user.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := u.credentialRepo.Create(ctx, credential); err != nil {
		u.log.Warnf("Failed to create credential: %+v", err)
		return err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		if rbErr := u.credentialRepo.Delete(ctx, user.ID); rbErr != nil {
			u.log.Warnf("Failed to roll back credential: %+v", rbErr)
		}
		return err
	}

	return nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	existing, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	role := entity.UserRole(req.Role)
	if role != existing.Role && !u.canAssign(ctx, role) {
		return nil, ErrForbiddenRole
	}

	updated := *existing
	updated.Email = normalizeEmail(req.Email)
	updated.Nom = req.Nom
	updated.Prenom = req.Prenom
	updated.Role = role

	if err := rules.User(u.snapshots.Users.Latest().Records, &updated); err != nil {
		return nil, err
	}

	if updated.Email != existing.Email {
		if err := u.credentialRepo.UpdateEmail(ctx, id, updated.Email); err != nil {
			u.log.Warnf("Failed to update credential email: %+v", err)
			return nil, err
		}
	}

	if err := u.userRepo.Update(ctx, &updated); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		if updated.Email != existing.Email {
			if rbErr := u.credentialRepo.UpdateEmail(ctx, id, existing.Email); rbErr != nil {
				u.log.Warnf("Failed to roll back credential email: %+v", rbErr)
			}
		}
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, actorID(ctx), entity.AuditActionUserUpdate, "user", id.String(), existing, updated)
	u.snapshots.NotifyChanged(ctx, entity.KindUser)

	return converter.UserToResponse(&updated), nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if viewer, ok := middleware.GetUserIDFromContext(ctx); ok && viewer == id {
		return ErrCannotDeleteSelf
	}

	existing, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	rows, err := u.userRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	if err := u.credentialRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete credential: %+v", err)
	}
	if u.tokens != nil {
		if err := u.tokens.RevokeAllUserTokens(ctx, id); err != nil {
			u.log.Warnf("Failed to revoke tokens of deleted user: %+v", err)
		}
	}

	_ = u.auditService.LogDelete(ctx, actorID(ctx), entity.AuditActionUserDelete, "user", id.String(), existing)
	u.snapshots.NotifyChanged(ctx, entity.KindUser)

	return nil
}

func (u *userUsecase) GetOfferableRoles(ctx context.Context) *dto.RolesResponse {
	role, _ := middleware.GetRoleFromContext(ctx)
	return converter.RolesToResponse(entity.OfferableRoles(role))
}

// SeedAdmin creates the first admin account. It does nothing once any admin
// exists and reports whether an account was created.
func (u *userUsecase) SeedAdmin(ctx context.Context, admin config.AdminConfig) (bool, error) {
	count, err := u.userRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to count admins: %+v", err)
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if admin.Email == "" || admin.Password == "" {
		return false, ErrAdminNotConfigured
	}

	nom, prenom := admin.Nom, admin.Prenom
	if nom == "" {
		nom = "Admin"
	}
	if prenom == "" {
		prenom = "Admin"
	}

	user := &entity.User{
		ID:     uuid.New(),
		Email:  normalizeEmail(admin.Email),
		Nom:    nom,
		Prenom: prenom,
		Role:   entity.RoleAdmin,
	}
	if err := u.register(ctx, user, admin.Password); err != nil {
		return false, err
	}

	_ = u.auditService.LogCreate(ctx, nil, entity.AuditActionUserCreate, "user", user.ID.String(), user)
	u.snapshots.NotifyChanged(ctx, entity.KindUser)

	return true, nil
}

func (u *userUsecase) canAssign(ctx context.Context, role entity.UserRole) bool {
	viewerRole, _ := middleware.GetRoleFromContext(ctx)
	for _, offered := range entity.OfferableRoles(viewerRole) {
		if offered == role {
			return true
		}
	}
	return false
}

func (u *userUsecase) find(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
