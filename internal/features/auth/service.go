package auth

import (
	"context"
	"errors"
	"time"

	"go-hms/internal/common/models"
	"go-hms/internal/features/user"
	"go-hms/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	TenantID *primitive.ObjectID
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) AuthService {
	return &AuthServiceImpl{
		UserRepo: userRepo,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	_, err := s.UserRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleStaff
	}

	newUser := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      role,
		Phone:     input.Phone,
		TenantID:  input.TenantID,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.UserRepo.Create(ctx, newUser); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return newUser, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.Active {
		return "", nil, ErrAccountDisabled
	}

	tenantHex := ""
	if u.TenantID != nil {
		tenantHex = u.TenantID.Hex()
	}
	token, err := utils.GenerateToken(u.ID, u.Role, tenantHex)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.UserRepo.FindByID(ctx, userID)
}
