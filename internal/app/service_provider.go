package app

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	authAPI "spinx_backend/internal/api/auth"
	userAPI "spinx_backend/internal/api/user"
	wheelAPI "spinx_backend/internal/api/wheel"
	"spinx_backend/internal/config"
	"spinx_backend/internal/config/env"
	"spinx_backend/internal/model"
	"spinx_backend/internal/repository"
	"spinx_backend/internal/repository/auth_repo"
	"spinx_backend/internal/repository/tx_repo"
	"spinx_backend/internal/repository/user_repo"
	"spinx_backend/internal/repository/wallet_repo"
	"spinx_backend/internal/service"
	"spinx_backend/internal/service/auth"
	"spinx_backend/internal/service/payment"
	"spinx_backend/internal/service/wheel"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository
	txRepo   repository.TransactionRepository
	payServ  service.PaymentService
	userHand *userAPI.Handler

	// Wheel bits
	wheelCfg   config.WheelConfig
	sqliteCfg  config.SQLiteConfig
	walletRepo repository.WalletRepository
	wheelServ  service.WheelService
	wheelHand  *wheelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

// stdRNG — боевой источник случайности (math/rand/v2, авто-сид)
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

// systemClock — боевые таймеры движка
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) wheel.Timer {
	return time.AfterFunc(d, f)
}

// logNotifier — UI-коллаборатор на стороне сервера: исходы раундов
// попадают в лог, отрисовка остается за клиентом
type logNotifier struct{}

func (logNotifier) RoundOpened(countdownSeconds int) {}

func (logNotifier) CountdownTick(secondsLeft int) {}

func (logNotifier) SpinFinished(segmentIndex int, entry *model.HistoryEntry, message string) {
	if entry == nil {
		return
	}
	log.Printf("wheel: %s (stake %d, payout %d) — %s", entry.SegmentLabel, entry.Stake, entry.Payout, message)
}

func (logNotifier) ThresholdReward(message string) {
	log.Println("wheel:", message)
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) TransactionRepo(ctx context.Context) repository.TransactionRepository {
	if sp.txRepo == nil {
		sp.txRepo = tx_repo.NewTransactionRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.txRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) PaymentService(ctx context.Context) service.PaymentService {
	if sp.payServ == nil {
		sp.payServ = payment.NewPaymentService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
		)
	}
	return sp.payServ
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{
			Serv: sp.PaymentService(ctx),
		})
	}
	return sp.userHand
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) SQLiteCfg() config.SQLiteConfig {
	if sp.sqliteCfg == nil {
		cfg, err := env.NewSQLiteConfig()
		if err != nil {
			panic("failed to get sqlite config: " + err.Error())
		}
		sp.sqliteCfg = cfg
	}
	return sp.sqliteCfg
}

func (sp *ServiceProvider) WalletRepo() repository.WalletRepository {
	if sp.walletRepo == nil {
		repo, err := wallet_repo.NewWalletRepository(sp.SQLiteCfg().Path())
		if err != nil {
			panic("failed to open wallet store: " + err.Error())
		}
		sp.walletRepo = repo
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		engine, err := wheel.NewEngine(
			sp.WheelCfg(),
			sp.WalletRepo(),
			logNotifier{},
			stdRNG{},
			systemClock{},
		)
		if err != nil {
			panic("failed to create wheel engine: " + err.Error())
		}
		sp.wheelServ = engine
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: sp.WheelService(ctx),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/forgot-password", authHandler.ForgotPassword)
			rr.Post("/reset-password", authHandler.ResetPassword)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Wallet endpoints
		userHandler := sp.UserHandler(ctx)
		r.Route("/api", func(rr chi.Router) {
			rr.Post("/transaction", userHandler.Transaction)
			rr.Get("/transactions/{username}", userHandler.ListTransactions)
			rr.Get("/users/{username}", userHandler.GetUser)
		})

		// Wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Route("/wheel", func(rr chi.Router) {
			rr.Post("/bet", wheelHandler.SubmitBet)
			rr.Post("/auto", wheelHandler.ToggleAutoPlay)
			rr.Post("/sound", wheelHandler.ToggleSound)
			rr.Get("/state", wheelHandler.State)
			rr.Get("/history", wheelHandler.History)
			rr.Get("/feed", wheelHandler.Feed)
		})

		sp.router = r
	}

	return sp.router
}
