package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/koffi-dev/gainpulse/internal/config"
	"github.com/koffi-dev/gainpulse/internal/domain"
	"github.com/koffi-dev/gainpulse/internal/i18n"
	"github.com/koffi-dev/gainpulse/internal/middleware"
	tg "github.com/koffi-dev/gainpulse/internal/telegram"
)

func (h *Handler) showTasks(ctx context.Context, b *bot.Bot, chatID int64, lang i18n.Lang, user *domain.User) {
	t := i18n.T(lang)

	tasks, err := h.tasks.Available(ctx, user.TelegramID)
	if errors.Is(err, domain.ErrTaskLimitReached) {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: t.TaskNone})
		return
	}
	if err != nil {
		slog.Error("list tasks", "error", err, "user_id", user.TelegramID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: t.TaskIntro})

	done := config.MaxCompletedTasks - len(tasks)
	noPreview := true
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:             chatID,
		Text:               renderTaskList(t, tasks, done),
		ReplyMarkup:        checkKeyboard(t, tasks),
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: &noPreview},
	})
}

// handleTaskCheck runs the evaluator over the task identifiers carried in
// the Check button payload and re-renders the list.
func (h *Handler) handleTaskCheck(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	lang := i18n.Resolve(cb.From.LanguageCode)
	t := i18n.T(lang)

	// Payload format: task_<id>_<id>...
	taskIDs := strings.Split(cb.Data, "_")[1:]

	res, err := h.tasks.Evaluate(ctx, user.TelegramID, taskIDs)
	if err != nil {
		slog.Error("evaluate tasks", "error", err, "user_id", user.TelegramID)
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})
		return
	}

	if len(res.Completed) == 0 {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: cb.ID,
			Text:            t.TaskAlert,
		})
		return
	}

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	msg := cb.Message.Message
	if msg == nil {
		return
	}

	if len(res.Remaining) == 0 {
		b.DeleteMessage(ctx, &bot.DeleteMessageParams{
			ChatID:    msg.Chat.ID,
			MessageID: msg.ID,
		})
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: msg.Chat.ID, Text: t.TaskDone})
		return
	}

	done := config.MaxCompletedTasks - len(res.Remaining)
	noPreview := true
	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:             msg.Chat.ID,
		MessageID:          msg.ID,
		Text:               renderTaskList(t, res.Remaining, done),
		ReplyMarkup:        checkKeyboard(t, res.Remaining),
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: &noPreview},
	})
}

func renderTaskList(t *i18n.Messages, tasks []*domain.Task, done int) string {
	var sb strings.Builder
	sb.WriteString(t.TaskMain)
	sb.WriteString(":")
	for _, task := range tasks {
		sb.WriteString(t.TaskLine(task.Link, task.Reward))
	}
	sb.WriteString(fmt.Sprintf("\n\n%s: %d/%d", t.TaskDoneLabel, done, config.MaxCompletedTasks))
	return sb.String()
}

func checkKeyboard(t *i18n.Messages, tasks []*domain.Task) *models.InlineKeyboardMarkup {
	data := "task"
	for _, task := range tasks {
		data += "_" + task.ID
	}
	return tg.InlineKeyboard(tg.ButtonRow(tg.InlineButton(t.BtnCheck, data)))
}
