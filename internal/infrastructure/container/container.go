package container

import (
	"context"
	"fmt"

	"github.com/gdugdh24/matchcore/internal/config"
	"github.com/gdugdh24/matchcore/internal/delivery/http"
	"github.com/gdugdh24/matchcore/internal/delivery/http/handler"
	"github.com/gdugdh24/matchcore/internal/delivery/http/middleware"
	"github.com/gdugdh24/matchcore/internal/infrastructure/database"
	"github.com/gdugdh24/matchcore/internal/infrastructure/server"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/internal/repository/memory"
	"github.com/gdugdh24/matchcore/internal/repository/postgres"
	"github.com/gdugdh24/matchcore/internal/repository/rediscache"
	"github.com/gdugdh24/matchcore/internal/usecase/album"
	"github.com/gdugdh24/matchcore/internal/usecase/feed"
	"github.com/gdugdh24/matchcore/internal/usecase/message"
	"github.com/gdugdh24/matchcore/internal/usecase/presence"
	"github.com/gdugdh24/matchcore/internal/usecase/profile"
	"github.com/gdugdh24/matchcore/internal/usecase/publicchat"
	"github.com/gdugdh24/matchcore/internal/usecase/swipe"
	"github.com/gdugdh24/matchcore/internal/usecase/wink"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	DB           *sqlx.DB
	Redis        *redis.Client
	Memory       *memory.Store
	Repositories *repository.Repositories
	Engine       *gin.Engine
	Server       *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initStorage(ctx); err != nil {
		c.Close()
		return nil, err
	}

	var presenceCache repository.PresenceCache
	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		presenceCache = rediscache.NewPresenceCache(redisClient)
	}

	repos := c.Repositories

	// Initialize use cases
	tracker := presence.NewTracker(repos.Users, presenceCache)
	swipeUseCase := swipe.NewSwipeUseCase(repos.Swipes, repos.Matches, repos.Profiles, tracker)
	feedUseCase := feed.NewFeedUseCase(repos.Profiles, repos.Swipes, tracker)
	albumUseCase := album.NewAlbumUseCase(repos.Albums, repos.Profiles)
	messageUseCase := message.NewMessageUseCase(repos.Messages, repos.Matches)
	profileUseCase := profile.NewProfileUseCase(repos.Profiles, albumUseCase, repos.ProfileViews, repos.Screenshots)
	winkUseCase := wink.NewWinkUseCase(repos.Winks, repos.Profiles)
	chatUseCase := publicchat.NewPublicChatUseCase(repos.PublicChat, repos.Profiles)

	// Initialize router
	router := http.NewRouter(
		handler.NewSwipeHandler(swipeUseCase),
		handler.NewFeedHandler(feedUseCase),
		handler.NewAlbumHandler(albumUseCase),
		handler.NewMessageHandler(messageUseCase),
		handler.NewProfileHandler(profileUseCase),
		handler.NewWinkHandler(winkUseCase),
		handler.NewPublicChatHandler(chatUseCase),
		handler.NewUserHandler(tracker),
		middleware.NewAuthMiddleware(cfg.JWT.AccessSecret, repos.Users),
		middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)

	engine, err := router.Setup()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}
	c.Engine = engine
	c.Server = server.NewServer(&cfg.Server, engine)

	logger.Info(ctx, "container initialized",
		logger.String("storage", cfg.Storage.Type),
		logger.Bool("presence_cache", presenceCache != nil),
	)
	return c, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.Storage.Type {
	case config.StorageMemory:
		c.Memory = memory.NewStore()
		c.Repositories = memory.NewRepositories(c.Memory)
		return nil
	case config.StoragePostgres:
		db, err := database.NewPostgresDB(&c.Config.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		if c.Config.Database.AutoMigrate {
			if err := database.Migrate(ctx, db.DB); err != nil {
				return err
			}
		}
		c.Repositories = postgres.NewRepositories(db)
		return nil
	default:
		return fmt.Errorf("unknown storage type %q", c.Config.Storage.Type)
	}
}

// Close closes all connections
func (c *Container) Close() error {
	ctx := context.Background()

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn(ctx, "error closing redis", logger.ErrorField(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
