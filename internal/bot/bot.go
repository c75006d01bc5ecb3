package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/healthdesk/carebot/internal/models"
	"github.com/healthdesk/carebot/internal/router"
	"github.com/healthdesk/carebot/internal/storage"
)

type Bot struct {
	api          *tgbotapi.BotAPI
	router       *router.Router
	storage      storage.Storage
	historyLimit int
	logger       *zap.Logger
}

func New(token string, r *router.Router, storage storage.Storage, historyLimit int, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:          api,
		router:       r,
		storage:      storage,
		historyLimit: historyLimit,
		logger:       logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	// The model can take a while, show a typing indicator meanwhile
	typing := tgbotapi.NewChatAction(message.Chat.ID, tgbotapi.ChatTyping)
	if _, err := b.api.Request(typing); err != nil {
		b.logger.Warn("Failed to send typing action",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}

	reply, err := b.router.Route(ctx, message.Text)
	if err != nil && !errors.Is(err, router.ErrGenerationFailed) {
		b.logger.Error("Failed to route message",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, something went wrong. Please try again.")
		return
	}
	if err != nil {
		// Generation failed; the reply already carries the failure text.
		b.logger.Error("Generation failed",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}

	b.sendReply(message.Chat.ID, message.MessageID, reply.Text)

	if err == nil && reply.Intent != models.IntentEmpty {
		b.saveQuery(ctx, message, reply)
	}
}

func (b *Bot) saveQuery(ctx context.Context, message *tgbotapi.Message, reply models.Reply) {
	query := &models.Query{
		ID:        uuid.New().String(),
		ChatID:    message.Chat.ID,
		Input:     strings.TrimSpace(message.Text),
		Intent:    reply.Intent,
		Term:      reply.Term,
		Reply:     reply.Text,
		CreatedAt: time.Now(),
	}

	if err := b.storage.SaveQuery(ctx, query); err != nil {
		b.logger.Error("Failed to save query",
			zap.Error(err),
			zap.String("query_id", query.ID),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "history":
		b.handleHistory(ctx, message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `Welcome to CareBot! 🩺
I can answer general health questions, explain medical terms, and point you in the right direction for appointments and prescriptions.

Just type your question. Use /help to see all available commands.

Disclaimer: my answers are for informational purposes only and not a substitute for professional medical advice.`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the bot
/help - Show this help message
/history - Show your recent questions

You can ask:
- "What is hypertension?" for definitions and explanations
- "I have a headache and fever" to learn about possible causes
- Anything about appointments or medications

Always consult a healthcare professional for personalized guidance.`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleHistory(ctx context.Context, message *tgbotapi.Message) {
	queries, err := b.storage.GetRecentQueries(ctx, message.Chat.ID, b.historyLimit)
	if err != nil {
		b.logger.Error("Failed to get recent queries",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't retrieve your question history.")
		return
	}

	if len(queries) == 0 {
		b.sendMessage(message.Chat.ID, "You haven't asked any questions yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Your recent questions:\n\n")
	for _, q := range queries {
		sb.WriteString(fmt.Sprintf("• %s\n", q.Input))
		if q.Term != "" {
			sb.WriteString(fmt.Sprintf("  (about: %s)\n", q.Term))
		}
	}

	b.sendMessage(message.Chat.ID, sb.String())
}

func (b *Bot) sendReply(chatID int64, replyToID int, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyToID
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
