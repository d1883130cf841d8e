package handler

import (
	"github.com/go-telegram/bot"

	"github.com/koffi-dev/gainpulse/internal/config"
	"github.com/koffi-dev/gainpulse/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	users       *service.UserService
	bonus       *service.BonusService
	withdraw    *service.WithdrawService
	tasks       *service.TaskService
	membership  *service.MembershipService
	botUsername string
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Users       *service.UserService
	Bonus       *service.BonusService
	Withdraw    *service.WithdrawService
	Tasks       *service.TaskService
	Membership  *service.MembershipService
	BotUsername string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		users:       deps.Users,
		bonus:       deps.Bonus,
		withdraw:    deps.Withdraw,
		tasks:       deps.Tasks,
		membership:  deps.Membership,
		botUsername: deps.BotUsername,
	}
}
