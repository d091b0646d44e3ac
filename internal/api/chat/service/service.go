package chatService

import (
	"EcommerceChatbot/internal/api/chat"
	chatRepository "EcommerceChatbot/internal/api/chat/repository"
	"EcommerceChatbot/pkg/redis"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

type IChatService interface {
	Answer(ctx context.Context, message string) (string, error)
	Classify(ctx context.Context, message string) (chat.ClassifyResponse, error)
	Status(ctx context.Context) chat.StatusResponse
}

type chatService struct {
	log      *logrus.Logger
	repo     chatRepository.Repository
	engine   *Engine
	cache    redis.IRedis
	cacheTTL time.Duration
}

// NewChatService builds the service. cache may be nil, in which case every
// message is resolved against the dataset.
func NewChatService(log *logrus.Logger, repo chatRepository.Repository, cache redis.IRedis, cacheTTL time.Duration) IChatService {
	return &chatService{
		log:      log,
		repo:     repo,
		engine:   NewEngine(repo),
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}
