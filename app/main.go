package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/auth"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	redisRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/redis"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/authentication"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/comment"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/like"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/user"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading configuration from the environment")
	}
}

func main() {
	cfg := loadConfig()
	setupLogger(cfg.LogLevel, cfg.LogFormat)

	// prepare database
	db, err := openDatabase(cfg)
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if cfg.DBAutoMigrate {
		if err := mysqlRepo.AutoMigrate(db); err != nil {
			logrus.Fatal("failed to migrate database: ", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheHost + ":" + cfg.CachePort,
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db, nil)
	threadRepo := mysqlRepo.NewThreadRepository(db, nil)
	commentRepo := mysqlRepo.NewCommentRepository(db, nil)
	replyRepo := mysqlRepo.NewReplyRepository(db, nil)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	authRepo := redisRepo.NewAuthenticationRepository(client, cfg.RefreshTokenAge)

	tokens := auth.NewTokenManager(cfg.AccessTokenKey, cfg.RefreshTokenKey, cfg.AccessTokenAge, cfg.RefreshTokenAge)
	hasher := auth.NewBcryptHasher(0)

	// Build service Layer
	userSvc := user.NewService(userRepo, hasher)
	authSvc := authentication.NewService(userRepo, authRepo, tokens, hasher)
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, cfg.ViewConcurrency)
	commentSvc := comment.NewService(threadRepo, commentRepo)
	replySvc := reply.NewService(threadRepo, commentRepo, replyRepo)
	likeSvc := like.NewService(threadRepo, commentRepo, likeRepo)

	route := newRouter(cfg, routerDeps{
		tokens:   tokens,
		metrics:  middleware.NewHTTPMetrics(prometheus.DefaultRegisterer),
		user:     rest.NewUserHandler(userSvc),
		auth:     rest.NewAuthenticationHandler(authSvc),
		thread:   rest.NewThreadHandler(threadSvc),
		comment:  rest.NewCommentHandler(commentSvc),
		reply:    rest.NewReplyHandler(replySvc),
		like:     rest.NewLikeHandler(likeSvc),
		pingFunc: func(ctx context.Context) error { return pingAll(ctx, db, client) },
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}

type routerDeps struct {
	tokens   domain.TokenManager
	metrics  *middleware.HTTPMetrics
	user     *rest.UserHandler
	auth     *rest.AuthenticationHandler
	thread   *rest.ThreadHandler
	comment  *rest.CommentHandler
	reply    *rest.ReplyHandler
	like     *rest.LikeHandler
	pingFunc func(ctx context.Context) error
}

func openDatabase(cfg config) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for i := range dbMaxRetry {
		db, err = gorm.Open(dialector, &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func newDialector(cfg config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		loc, err := time.LoadLocation("Asia/Jakarta")
		if err != nil {
			loc = time.UTC
		}
		dsn := mysqldriver.Config{
			User:                 cfg.DBUser,
			Passwd:               cfg.DBPass,
			Net:                  "tcp",
			Addr:                 cfg.DBHost + ":" + cfg.DBPort,
			DBName:               cfg.DBName,
			ParseTime:            true,
			Loc:                  loc,
			AllowNativePasswords: true,
			// soft deleting an already deleted row must still report a match
			ClientFoundRows: true,
		}
		return mysql.Open(dsn.FormatDSN()), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Jakarta",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPass, cfg.DBName)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DBDriver)
	}
}

func pingAll(ctx context.Context, db *gorm.DB, client *redis.Client) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}
	return client.Ping(ctx).Err()
}

func newRouter(cfg config, d routerDeps) *gin.Engine {
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.CORS())
	route.Use(middleware.Metrics(d.metrics))
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	route.GET("/health", func(c *gin.Context) {
		if err := d.pingFunc(c.Request.Context()); err != nil {
			logrus.WithError(err).Warn("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register routes
	route.POST("/users", d.user.Register)
	route.POST("/authentications", d.auth.Login)
	route.PUT("/authentications", d.auth.Refresh)
	route.DELETE("/authentications", d.auth.Logout)

	route.GET("/threads/:threadId", d.thread.GetByID)

	authorized := route.Group("/threads")
	authorized.Use(middleware.AuthMiddleware(d.tokens))
	{
		authorized.POST("", d.thread.Store)
		authorized.POST("/:threadId/comments", d.comment.Store)
		authorized.DELETE("/:threadId/comments/:commentId", d.comment.Delete)
		authorized.PUT("/:threadId/comments/:commentId/likes", d.like.Toggle)
		authorized.POST("/:threadId/comments/:commentId/replies", d.reply.Store)
		authorized.DELETE("/:threadId/comments/:commentId/replies/:replyId", d.reply.Delete)
	}

	return route
}
