package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"

	"ems-platform/internal/audit"
	"ems-platform/internal/auth"
	"ems-platform/internal/config"
	"ems-platform/internal/employee"
	"ems-platform/internal/httpapi"
	"ems-platform/internal/leave"
	"ems-platform/internal/passreset"
	"ems-platform/internal/reporting"
	"ems-platform/internal/role"
	"ems-platform/internal/user"
	"ems-platform/pkg/logger"
	"ems-platform/pkg/utils"
)

const loginAttemptLimit = 5

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env, "ems-api")
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PoolConfig{})
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	roleRepo := role.NewPostgresRepo(db)
	empRepo := employee.NewPostgresRepo(db)
	userRepo := user.NewPostgresRepo(db)
	leaveRepo := leave.NewPostgresRepo(db)

	roles := role.NewService(roleRepo)
	emps := employee.NewService(empRepo, roleRepo)
	users := user.NewService(userRepo, empRepo, roleRepo)
	leaves := leave.NewService(leaveRepo, empRepo)
	reports := reporting.NewService(empRepo, leaveRepo, userRepo)
	reset := passreset.NewService(users, passreset.NewRedisTokenStore(rdb), cfg.Auth.ResetTokenTTL)
	audits := audit.NewService(audit.NewPostgresRepo(db))

	h := httpapi.Handlers{
		Tokens:    tokens,
		Users:     users,
		Employees: emps,
		Leaves:    leaves,
		Roles:     roles,
		Reset:     reset,
		Reports:   reports,
		Audit:     audits,
		AllowLogin: func(ctx context.Context, username string) (bool, error) {
			return utils.AllowAttempt(ctx, rdb, "login:"+username, loginAttemptLimit, time.Minute)
		},
		ClearLoginAttempts: func(ctx context.Context, username string) {
			if err := utils.ClearAttempts(ctx, rdb, "login:"+username); err != nil {
				log.Warn("clearing login attempts failed", "err", err)
			}
		},
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	httpapi.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
