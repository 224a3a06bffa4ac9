// Package telegram connects the dispatcher to a Telegram DM conversation:
// long-polled updates in, Markdown messages out, gated to a single
// authorized user.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/eliasnika/calliope/internal/dispatch"
	"github.com/eliasnika/calliope/internal/personality"
)

// api is the slice of the bot client the conversation loop needs.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Sender delivers one outbound message to a fixed chat. Implements
// dispatch.Sender.
type Sender struct {
	api    api
	chatID int64
}

func NewSender(bot *tgbotapi.BotAPI, chatID int64) *Sender {
	return &Sender{api: bot, chatID: chatID}
}

func (s *Sender) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(s.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := s.api.Send(msg)
	return err
}

// Bot runs the inbound conversation loop.
type Bot struct {
	api   api
	owner int64
	disp  *dispatch.Dispatcher
	sess  *dispatch.Session
	pers  *personality.Responder
	log   *zap.Logger
}

func New(bot *tgbotapi.BotAPI, owner int64, disp *dispatch.Dispatcher, sess *dispatch.Session, pers *personality.Responder, log *zap.Logger) *Bot {
	return &Bot{api: bot, owner: owner, disp: disp, sess: sess, pers: pers, log: log}
}

// Run long-polls for updates until ctx is canceled. Each text message from
// the authorized user goes through the dispatcher; anyone else gets a fixed
// refusal and nothing reaches the features.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)
	b.log.Info("listening for messages", zap.Int64("owner", b.owner))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" || msg.From == nil {
		return
	}

	if msg.From.ID != b.owner {
		b.log.Warn("unauthorized message", zap.Int64("from", msg.From.ID))
		b.refuse(msg.Chat.ID)
		return
	}

	b.disp.Dispatch(ctx, b.sess, msg.Text)
}

func (b *Bot) refuse(chatID int64) {
	reply := tgbotapi.NewMessage(chatID, b.pers.Unauthorized())
	reply.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(reply); err != nil {
		b.log.Error("refusal send failed", zap.Error(err))
	}
}
