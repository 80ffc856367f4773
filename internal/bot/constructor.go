package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"bgbot/internal/content"
	"bgbot/internal/storage"
)

// NewBot creates a new bot instance
func NewBot(token string, db storage.Storage, repo *content.Repository, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("authorized on telegram", zap.String("username", api.Self.UserName))

	return &Bot{
		api:     api,
		tp:      &tgTransport{api: api},
		db:      db,
		content: repo,
		locks:   newUserLocks(),
		logger:  logger,
	}, nil
}
