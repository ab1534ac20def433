package user

import (
	"context"
	"errors"
	"time"

	"go-hms/internal/common/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ErrWrongPassword is returned when the current password check fails
// during a password change.
var ErrWrongPassword = errors.New("current password does not match")

type UserService interface {
	GetProfile(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	ChangePassword(ctx context.Context, id primitive.ObjectID, current, next string) error
	ListUsers(ctx context.Context, role string, page, limit int64) ([]models.User, int64, error)
}

type UserServiceImpl struct {
	UserRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &UserServiceImpl{
		UserRepo: userRepo,
	}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.UserRepo.FindByID(ctx, id)
}

var updatableFields = map[string]string{
	"name":  "name",
	"phone": "phone",
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	set := bson.M{}
	for field, value := range updates {
		if name, ok := updatableFields[field]; ok {
			set[name] = value
		}
	}
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now()

	return s.UserRepo.Update(ctx, id, set)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id primitive.ObjectID, current, next string) error {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.UserRepo.Update(ctx, id, bson.M{
		"password":   string(hashed),
		"updated_at": time.Now(),
	})
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, role string, page, limit int64) ([]models.User, int64, error) {
	filter := make(map[string]interface{})
	if role != "" && role != "all" {
		filter["role"] = role
	}
	offset := (page - 1) * limit
	return s.UserRepo.List(ctx, filter, limit, offset)
}
