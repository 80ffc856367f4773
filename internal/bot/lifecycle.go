package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Start starts the bot in polling mode
func (b *Bot) Start() error {
	b.logger.Info("starting bot in polling mode")

	// Remove webhook (if any was set previously)
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		b.logger.Warn("failed to delete webhook", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("bot started, waiting for updates")

	for update := range updates {
		go b.HandleUpdate(update)
	}
	return nil
}

// Stop shuts down the polling update channel.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

// StartWebhook registers the webhook with Telegram and verifies it.
func (b *Bot) StartWebhook(webhookURL string) error {
	b.logger.Info("setting up webhook", zap.String("webhook_url", webhookURL))

	webhookConfig, err := tgbotapi.NewWebhook(webhookURL + "/telegram-webhook")
	if err != nil {
		return err
	}
	webhookConfig.MaxConnections = 40

	if _, err := b.api.Request(webhookConfig); err != nil {
		b.logger.Error("failed to set webhook", zap.Error(err), zap.String("webhook_url", webhookURL))
		return err
	}

	info, err := b.api.GetWebhookInfo()
	if err != nil {
		b.logger.Warn("failed to get webhook info", zap.Error(err))
	} else {
		b.logger.Info("webhook set",
			zap.String("url", info.URL),
			zap.Int("pending_updates", info.PendingUpdateCount),
		)
	}
	return nil
}

// HandleWebhookUpdate processes a single update delivered over the webhook.
func (b *Bot) HandleWebhookUpdate(update tgbotapi.Update) {
	b.HandleUpdate(update)
}
