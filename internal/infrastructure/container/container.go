package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/skillswap-app/skillswap-backend/internal/config"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http/handler"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http/middleware"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/database"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/events"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/gemini"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/server"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
	"github.com/skillswap-app/skillswap-backend/internal/repository/memory"
	"github.com/skillswap-app/skillswap-backend/internal/repository/postgres"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/admin"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/auth"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/chat"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/feed"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/match"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/profile"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/session"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/suggest"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// Stores: postgres when configured, otherwise the bundled in-memory
	// directory.
	var (
		userRepo    repository.UserRepository
		messageRepo repository.MessageRepository
		postRepo    repository.PostRepository
	)
	if cfg.Database.Host != "" {
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		userRepo = postgres.NewUserRepository(db)
		messageRepo = postgres.NewMessageRepository(db)
		postRepo = postgres.NewPostRepository(db)
	} else {
		fmt.Println("No database configured, using in-memory store")
		userRepo = memory.NewUserStore(memory.DefaultUsers())
		messageRepo = memory.NewMessageStore()
		postRepo = memory.NewPostStore()
	}
	skillRepo := memory.NewSkillStore(memory.DefaultSkills())

	// Event publisher: redis pub/sub when configured, in-process otherwise.
	var publisher session.Publisher
	if cfg.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		publisher = events.NewRedisPublisher(redisClient)
	} else {
		publisher = events.NewRecorder()
	}

	// Gemini is optional; the suggest usecase falls back to canned starters.
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
		} else {
			c.Gemini = geminiClient
		}
	}

	// Use cases
	authUseCase := auth.NewAuthUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.AccessExpiryMin)
	profileUseCase := profile.NewProfileUseCase(userRepo, skillRepo)
	matchUseCase := match.NewMatchUseCase(userRepo)
	sessionUseCase := session.NewSessionUseCase(userRepo, messageRepo, publisher)
	chatUseCase := chat.NewChatUseCase(messageRepo)
	feedUseCase := feed.NewFeedUseCase(userRepo)
	suggestUseCase := suggest.NewSuggestUseCase(skillRepo, c.Gemini)
	adminUseCase := admin.NewAdminUseCase(userRepo, messageRepo, postRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	sessionHandler := handler.NewSessionHandler(sessionUseCase)
	messageHandler := handler.NewMessageHandler(chatUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	postHandler := handler.NewPostHandler(postRepo)
	suggestHandler := handler.NewSuggestHandler(suggestUseCase)
	skillHandler := handler.NewSkillHandler(skillRepo)
	adminHandler := handler.NewAdminHandler(adminUseCase)

	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	router := http.NewRouter(
		authHandler,
		profileHandler,
		matchHandler,
		sessionHandler,
		messageHandler,
		feedHandler,
		postHandler,
		suggestHandler,
		skillHandler,
		adminHandler,
		authMiddleware,
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup())
	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
