package main

import (
	"context"
	"errors"
	"os"
	"time"

	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/database"
	"go-hms/internal/features/property"
	"go-hms/internal/features/user"
	"go-hms/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seed provisions the admin login and the property profile if missing.
func Seed(
	lc fx.Lifecycle,
	userRepo user.UserRepository,
	propertyRepo property.PropertyRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("failed to shutdown", zap.Error(err))
					}
				}()

				adminEmail := getenv("SEED_ADMIN_EMAIL", "admin@example.com")
				adminPassword := getenv("SEED_ADMIN_PASSWORD", "changeme")

				_, err := userRepo.FindByEmail(ctx, adminEmail)
				switch {
				case err == nil:
					logger.Info("admin user exists, skipping", zap.String("email", adminEmail))
				case errors.Is(err, mongo.ErrNoDocuments):
					hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
					if err != nil {
						logger.Error("failed to hash admin password", zap.Error(err))
						return
					}
					admin := &models.User{
						ID:        primitive.NewObjectID(),
						Name:      "Administrator",
						Email:     adminEmail,
						Password:  string(hashed),
						Role:      models.RoleAdmin,
						Active:    true,
						CreatedAt: time.Now(),
						UpdatedAt: time.Now(),
					}
					if err := userRepo.Create(ctx, admin); err != nil {
						logger.Error("failed to create admin user", zap.Error(err))
						return
					}
					logger.Info("created admin user", zap.String("email", adminEmail))
				default:
					logger.Error("failed to look up admin user", zap.Error(err))
					return
				}

				_, err = propertyRepo.Find(ctx)
				switch {
				case err == nil:
					logger.Info("property profile exists, skipping")
				case errors.Is(err, mongo.ErrNoDocuments):
					err := propertyRepo.Upsert(ctx, bson.M{
						"name":       getenv("SEED_PROPERTY_NAME", "Main Hostel"),
						"created_at": time.Now(),
						"updated_at": time.Now(),
					})
					if err != nil {
						logger.Error("failed to create property profile", zap.Error(err))
						return
					}
					logger.Info("created property profile")
				default:
					logger.Error("failed to look up property profile", zap.Error(err))
					return
				}

				logger.Info("seeding finished")
			}()
			return nil
		},
	})
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			user.NewUserRepository,
			property.NewPropertyRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
