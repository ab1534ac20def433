package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-hms/internal/common/api"
	"go-hms/internal/config"
	"go-hms/internal/database"
	"go-hms/internal/features/auth"
	"go-hms/internal/features/exchange"
	"go-hms/internal/features/expense"
	"go-hms/internal/features/payment"
	"go-hms/internal/features/property"
	"go-hms/internal/features/reconcile"
	"go-hms/internal/features/reports"
	"go-hms/internal/features/room"
	"go-hms/internal/features/system"
	"go-hms/internal/features/tenant"
	"go-hms/internal/features/ticket"
	"go-hms/internal/features/user"
	"go-hms/internal/features/vacating"
	"go-hms/internal/logger"
	"go-hms/internal/middleware"
	"go-hms/pkg/utils"

	_ "go-hms/docs" // swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates the Fiber app with the shared error shape and
// global middleware.
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())
	app.Use(middleware.RateLimitMiddleware(cfg.RateLimitMax))

	return app
}

// AsRoute tags a constructor so Fx collects it into the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer starts Fiber in a goroutine and shuts it down with the app.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// @title           Hostel Management API
// @version         1.0
// @description     Rooms, tenants, payments, tickets and reporting for a single property.

// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			user.NewUserRepository,
			room.NewRoomRepository,
			tenant.NewTenantRepository,
			payment.NewPaymentRepository,
			ticket.NewTicketRepository,
			expense.NewExpenseRepository,
			vacating.NewVacatingRepository,
			exchange.NewExchangeRepository,
			property.NewPropertyRepository,

			auth.NewAuthService,
			user.NewUserService,
			room.NewRoomService,
			tenant.NewTenantService,
			payment.NewPaymentService,
			ticket.NewTicketService,
			expense.NewExpenseService,
			vacating.NewVacatingService,
			exchange.NewExchangeService,
			property.NewPropertyService,
			reports.NewReportsService,
			reconcile.NewService,

			auth.NewAuthController,
			user.NewUserController,
			room.NewRoomController,
			tenant.NewTenantController,
			payment.NewPaymentController,
			ticket.NewTicketController,
			expense.NewExpenseController,
			vacating.NewVacatingController,
			exchange.NewExchangeController,
			property.NewPropertyController,
			reports.NewReportsController,

			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(room.NewRoomApi),
			AsRoute(tenant.NewTenantApi),
			AsRoute(payment.NewPaymentApi),
			AsRoute(ticket.NewTicketApi),
			AsRoute(expense.NewExpenseApi),
			AsRoute(vacating.NewVacatingApi),
			AsRoute(exchange.NewExchangeApi),
			AsRoute(property.NewPropertyApi),
			AsRoute(reports.NewReportsApi),
			AsRoute(system.NewSwaggerApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(s *reconcile.Scheduler) {},
		),
		fx.Provide(reconcile.NewScheduler),
	)

	app.Run()
}
