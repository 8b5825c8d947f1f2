package di

import (
	"context"

	"todo-backend/application/serviceimpl"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/infrastructure/mysql"
	redispkg "todo-backend/infrastructure/redis"
	"todo-backend/infrastructure/session"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/pkg/auth"
	"todo-backend/pkg/config"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/scheduler"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional, sessions fall back to memory
	SessionStore   ports.SessionStore
	SessionManager *session.Manager
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository    repositories.UserRepository
	TaskRepository    repositories.TaskRepository
	SubtaskRepository repositories.SubtaskRepository

	// Services
	AuthService      services.AuthService
	TaskService      services.TaskService
	SubtaskService   services.SubtaskService
	RetentionService *serviceimpl.RetentionService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := mysql.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := mysql.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Sessions live in Redis when configured, otherwise in process memory.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (falling back to memory sessions)", "error", err)
			c.SessionStore = session.NewMemoryStore()
		} else {
			c.RedisClient = redisClient
			c.SessionStore = redispkg.NewSessionStore(redisClient)
			logger.Info("Redis session store initialized", "url", c.Config.Redis.URL)
		}
	} else {
		c.SessionStore = session.NewMemoryStore()
		logger.Info("Memory session store initialized")
	}

	c.SessionManager = session.NewManager(c.SessionStore, c.Config.Session)
	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = mysql.NewUserRepository(c.DB)
	c.TaskRepository = mysql.NewTaskRepository(c.DB)
	c.SubtaskRepository = mysql.NewSubtaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	var verifier auth.CredentialVerifier = auth.AcceptAll{}
	if c.Config.Auth.VerifyPasswords {
		verifier = auth.Bcrypt{}
		logger.Info("Password verification enabled")
	}

	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, verifier)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.SubtaskRepository)
	c.SubtaskService = serviceimpl.NewSubtaskService(c.TaskRepository, c.SubtaskRepository)
	c.RetentionService = serviceimpl.NewRetentionService(c.TaskRepository, c.Config.Retention.CompletedTaskDays)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Info("Event scheduler started")

	if c.RetentionService.Enabled() {
		err := c.EventScheduler.AddJob("completed-task-retention", c.Config.Retention.CronExpr, func() {
			c.RetentionService.RunOnce(context.Background())
		})
		if err != nil {
			logger.Warn("Failed to schedule retention sweep", "error", err)
		} else {
			logger.Info("Retention sweep scheduled",
				"cron", c.Config.Retention.CronExpr,
				"days", c.Config.Retention.CompletedTaskDays,
			)
		}
	}

	// The Redis store expires sessions by TTL, the memory store needs a sweep.
	if memStore, ok := c.SessionStore.(*session.MemoryStore); ok {
		err := c.EventScheduler.AddJob("expired-session-sweep", "*/30 * * * *", func() {
			if n, err := memStore.DeleteExpired(context.Background()); err == nil && n > 0 {
				logger.Info("Expired sessions removed", "count", n)
			}
		})
		if err != nil {
			logger.Warn("Failed to schedule session sweep", "error", err)
		}
	}

	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil {
		if c.EventScheduler.IsRunning() {
			c.EventScheduler.Stop()
			logger.Info("Event scheduler stopped")
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:    c.AuthService,
		TaskService:    c.TaskService,
		SubtaskService: c.SubtaskService,
		Sessions:       c.SessionManager,
		SessionConfig:  c.Config.Session,
	}
}
