package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/travelhub/booking-backend-go/internal/api"
	"github.com/travelhub/booking-backend-go/internal/config"
	"github.com/travelhub/booking-backend-go/internal/database"
	"github.com/travelhub/booking-backend-go/internal/middleware"
	"github.com/travelhub/booking-backend-go/internal/seed"
)

func main() {
	// 加载配置
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "travel-backend",
		Short: "Travel package pricing and search API",
	}

	rootCmd.AddCommand(
		serveCmd(cfg),
		migrateCmd(cfg),
		seedCmd(cfg),
		tokenCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB 初始化数据库并执行迁移
func openDB(cfg *config.Config) error {
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := database.Migrate(database.GetDB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func serveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openDB(cfg); err != nil {
				return err
			}
			defer database.Close()

			gin.SetMode(cfg.GinMode)

			limiter, closeLimiter := newLimiter(cmd.Context(), cfg)
			defer closeLimiter()

			// 初始化路由
			router := api.SetupRouter(cfg, database.GetDB(), limiter)

			// 启动服务器
			log.Printf("Server starting on port %s", cfg.Port)
			return router.Run(cfg.Port)
		},
	}
}

// newLimiter picks the redis limiter when REDIS_ADDR is set and reachable
func newLimiter(ctx context.Context, cfg *config.Config) (middleware.Limiter, func()) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		err := client.Ping(pingCtx).Err()
		if err == nil {
			log.Printf("Rate limiting via redis at %s", cfg.RedisAddr)
			return middleware.NewRedisLimiter(client, cfg.RateLimit, cfg.RateWindow), func() { client.Close() }
		}
		log.Printf("Warning: redis at %s unreachable (%v), using in-memory rate limiting", cfg.RedisAddr, err)
		client.Close()
	}

	limiter := middleware.NewMemoryLimiter(cfg.RateLimit, cfg.RateWindow)
	return limiter, limiter.Close
}

func migrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openDB(cfg); err != nil {
				return err
			}
			defer database.Close()

			fmt.Println("Migrations applied.")
			return nil
		},
	}
}

func seedCmd(cfg *config.Config) *cobra.Command {
	var (
		from string
		days int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo packages and inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().UTC().Truncate(24 * time.Hour)
			if from != "" {
				t, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid --from date %q: %w", from, err)
				}
				start = t
			}
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}

			if err := openDB(cfg); err != nil {
				return err
			}
			defer database.Close()

			return seed.Run(cmd.Context(), database.GetDB(), start, days)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first schedule date, YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&days, "days", 30, "number of days of transport schedules")
	return cmd
}

func tokenCmd(cfg *config.Config) *cobra.Command {
	var (
		user string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the booking endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := middleware.IssueToken(cfg.JWTSecret, user, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user id placed in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
