package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forum-api/forum-api/internal/config"
	mysqlRepo "github.com/forum-api/forum-api/internal/repository/mysql"
	"github.com/forum-api/forum-api/internal/rest"
	"github.com/forum-api/forum-api/internal/rest/middleware"
	"github.com/forum-api/forum-api/internal/security"
	"github.com/forum-api/forum-api/internal/usecase/authentication"
	"github.com/forum-api/forum-api/internal/usecase/comment"
	"github.com/forum-api/forum-api/internal/usecase/reply"
	"github.com/forum-api/forum-api/internal/usecase/thread"
	"github.com/forum-api/forum-api/internal/usecase/user"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
	shutdownTimeout    = 5 * time.Second
)

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 logger.Default.LogMode(logger.Warn),
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

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// prepare database
	db, err := openDB(cfg.DSN())
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

	if cfg.AutoMigrate {
		if err := mysqlRepo.Migrate(db); err != nil {
			logrus.Fatal("failed to migrate schema: ", err)
		}
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db, newID)
	authRepo := mysqlRepo.NewAuthenticationRepository(db)
	threadRepo := mysqlRepo.NewThreadRepository(db, newID)
	commentRepo := mysqlRepo.NewCommentRepository(db, newID)
	replyRepo := mysqlRepo.NewReplyRepository(db, newID)

	passwordHash := security.NewBcryptPasswordHash(0)
	tokenManager := security.NewJWTTokenManager(cfg.AccessTokenKey, cfg.RefreshTokenKey, cfg.AccessTokenAge)

	// Build service Layer
	userSvc := user.NewService(userRepo, passwordHash)
	authSvc := authentication.NewService(userRepo, authRepo, tokenManager, passwordHash)
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo)
	replySvc := reply.NewService(replyRepo, commentRepo, threadRepo)

	userHandler := rest.NewUserHandler(userSvc)
	authHandler := rest.NewAuthenticationHandler(authSvc)
	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)

	// prepare gin
	route := gin.New()
	route.Use(middleware.Logger(), gin.Recovery())
	route.Use(middleware.CORS())
	route.Use(middleware.Metrics())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	// Register routes
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	route.POST("/users", userHandler.Register)
	route.POST("/authentications", authHandler.Login)
	route.PUT("/authentications", authHandler.Refresh)
	route.DELETE("/authentications", authHandler.Logout)

	route.GET("/threads/:threadId", threadHandler.GetThreadByID)

	authorized := route.Group("/")
	authorized.Use(middleware.AuthMiddleware(tokenManager))
	{
		authorized.POST("/threads", threadHandler.PostThread)
		authorized.POST("/threads/:threadId/comments", commentHandler.PostComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", commentHandler.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replyHandler.PostReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replyHandler.DeleteReply)
	}

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Error("server stopped with error: ", err)
		return
	}
	logrus.Info("Server exiting")
}
