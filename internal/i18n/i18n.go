package i18n

import "fmt"

// Lang is a supported locale. Anything that is not French falls back to
// English, matching how the original bot resolved language codes.
type Lang string

const (
	LangFR Lang = "fr"
	LangEN Lang = "en"
)

// Resolve maps a Telegram language code to a supported locale.
func Resolve(code string) Lang {
	if code == "fr" {
		return LangFR
	}
	return LangEN
}

// Messages holds every user-facing text for one locale. Static data, never
// mutated after init.
type Messages struct {
	Start         string
	Welcome       string
	Menu          string
	Invalid       string
	InvitedBy     func(inviterName string) string
	BonusWin      string
	BonusWait     func(hours, minutes, seconds int) string
	Account       func(amount int64, invited int) string
	Share         func(link string) string
	Procedure     string
	Settings      func(accountNumber string) string
	GetNumber     string
	NewNumber     string
	BelowMinimum  func(amount int64) string
	NeedNumber    string
	WithdrawAsk   string
	WithdrawOK    string
	Insufficient  func(amount int64) string
	MinimumText   string
	MinUsers      func(name string, invited int) string
	TaskIntro     string
	TaskMain      string
	TaskLine      func(link string, reward int64) string
	TaskDoneLabel string
	TaskNone      string
	TaskAlert     string
	TaskDone      string

	// Buttons
	BtnVerify string
	BtnCheck  string
	BtnAddNum string
}

var table = map[Lang]*Messages{
	LangFR: {
		Start:   "Bienvenue ! 🎉\n\nPour utiliser le bot, rejoins d'abord nos deux canaux officiels, puis clique sur le bouton ci-dessous.",
		Welcome: "Ton compte est vérifié ✅ Bienvenue !",
		Menu:    "Continue à partager ton lien pour gagner encore plus d’argent. 💰",
		Invalid: "❌ Tu n'as pas encore rejoint tous les canaux. Rejoins-les puis réessaie.",
		InvitedBy: func(inviterName string) string {
			return fmt.Sprintf("Tu as été invitée par %s 🎉", inviterName)
		},
		BonusWin: "Félicitations, tu as gagné 750 FCFA 🎁",
		BonusWait: func(hours, minutes, seconds int) string {
			return fmt.Sprintf("⏳ Prochain bonus disponible dans %dh %dmin %ds.", hours, minutes, seconds)
		},
		Account: func(amount int64, invited int) string {
			return fmt.Sprintf("💰 Ton solde: %d FCFA\n👥 Personnes invitées: %d", amount, invited)
		},
		Share: func(link string) string {
			return fmt.Sprintf("Partage ton lien d'invitation et gagne 5500 FCFA par personne:\n\n%s", link)
		},
		Procedure: "📋 Procédure 📋\n\n1️⃣ Invite tes amis avec ton lien.\n2️⃣ Réclame ton bonus toutes les 2 heures.\n3️⃣ Complète les tâches.\n4️⃣ Retire à partir de 40000 FCFA.",
		Settings: func(accountNumber string) string {
			if accountNumber == "" {
				return "📌 Aucun numéro enregistré."
			}
			return fmt.Sprintf("📌 Numéro enregistré: %s", accountNumber)
		},
		GetNumber: "Envoie le numéro de compte sur lequel tu veux recevoir tes retraits.",
		NewNumber: "✅ Ton numéro a bien été enregistré.",
		BelowMinimum: func(amount int64) string {
			return fmt.Sprintf("❌ Le retrait minimum est de 40000 FCFA. Ton solde actuel: %d FCFA.", amount)
		},
		NeedNumber:  "❌ Ajoute d'abord un numéro de compte avec 📌 Ajoutez un numéro.",
		WithdrawAsk: "Entre le montant que tu veux retirer (minimum 40000 FCFA):",
		WithdrawOK:  "✅ Ton retrait a été approuvé ! Tu recevras ton paiement sous peu.",
		Insufficient: func(amount int64) string {
			return fmt.Sprintf("❌ Solde insuffisant. Ton solde actuel est de %dFCFA.", amount)
		},
		MinimumText: "❌ Le montant minimum de retrait est 40000 FCFA.",
		MinUsers: func(name string, invited int) string {
			return fmt.Sprintf("❌ <b>%s</b>, tu dois inviter au moins 5 personnes avant de retirer. Invités: <b>%d</b>/5.", name, invited)
		},
		TaskIntro: "🚩 Complète les tâches suivantes pour gagner des récompenses !",
		TaskMain:  "Voici tes tâches",
		TaskLine: func(link string, reward int64) string {
			return fmt.Sprintf("\n\n👉 %s\n💸 Gains: %d FCFA", link, reward)
		},
		TaskDoneLabel: "Terminé",
		TaskNone:      "🚩 Tu as déjà complété toutes les tâches disponibles.",
		TaskAlert:     "❌ Aucune tâche complétée pour le moment.",
		TaskDone:      "✅ Toutes les tâches sont complétées, tes gains ont été crédités !",
		BtnVerify:     "✅ S'inscrire",
		BtnCheck:      "✅ Check",
		BtnAddNum:     "📌 Ajouter le numéro",
	},
	LangEN: {
		Start:   "Welcome! 🎉\n\nTo use the bot, first join our two official channels, then press the button below.",
		Welcome: "Your account is verified ✅ Welcome!",
		Menu:    "Keep sharing your link to earn even more money. 💰",
		Invalid: "❌ You have not joined all the channels yet. Join them and try again.",
		InvitedBy: func(inviterName string) string {
			return fmt.Sprintf("You have been invited by %s 🎉", inviterName)
		},
		BonusWin: "Congratulations, you won 750 FCFA 🎁",
		BonusWait: func(hours, minutes, seconds int) string {
			return fmt.Sprintf("⏳ Next bonus available in %dh %dmin %ds.", hours, minutes, seconds)
		},
		Account: func(amount int64, invited int) string {
			return fmt.Sprintf("💰 Your balance: %d FCFA\n👥 Invited users: %d", amount, invited)
		},
		Share: func(link string) string {
			return fmt.Sprintf("Share your invite link and earn 5500 FCFA per person:\n\n%s", link)
		},
		Procedure: "📋 Procedure 📋\n\n1️⃣ Invite your friends with your link.\n2️⃣ Claim your bonus every 2 hours.\n3️⃣ Complete the tasks.\n4️⃣ Withdraw from 40000 FCFA.",
		Settings: func(accountNumber string) string {
			if accountNumber == "" {
				return "📌 No account number saved."
			}
			return fmt.Sprintf("📌 Saved number: %s", accountNumber)
		},
		GetNumber: "Send the account number you want to receive your withdrawals on.",
		NewNumber: "✅ Your number has been saved.",
		BelowMinimum: func(amount int64) string {
			return fmt.Sprintf("❌ The minimum withdrawal is 40000 FCFA. Your current balance: %d FCFA.", amount)
		},
		NeedNumber:  "❌ First add an account number with 📌 Add a Number.",
		WithdrawAsk: "Enter the amount you want to withdraw (minimum 40000 FCFA):",
		WithdrawOK:  "✅ Your withdrawal has been approved! You will receive your payment shortly.",
		Insufficient: func(amount int64) string {
			return fmt.Sprintf("❌ Insufficient balance. Your current balance is %dFCFA.", amount)
		},
		MinimumText: "❌ The minimum withdrawal amount is 40000 FCFA.",
		MinUsers: func(name string, invited int) string {
			return fmt.Sprintf("❌ <b>%s</b>, you must invite at least 5 people before withdrawing. Invited: <b>%d</b>/5.", name, invited)
		},
		TaskIntro: "🚩 Complete the following tasks to earn rewards!",
		TaskMain:  "Here are your tasks",
		TaskLine: func(link string, reward int64) string {
			return fmt.Sprintf("\n\n👉 %s\n💸 Gains: %d FCFA", link, reward)
		},
		TaskDoneLabel: "Done",
		TaskNone:      "🚩 You have already completed all available tasks.",
		TaskAlert:     "❌ No task completed yet.",
		TaskDone:      "✅ All tasks completed, your rewards have been credited!",
		BtnVerify:     "✅ S'inscrire",
		BtnCheck:      "✅ Check",
		BtnAddNum:     "📌 Add the number",
	},
}

// T returns the message set for the locale.
func T(lang Lang) *Messages {
	if m, ok := table[lang]; ok {
		return m
	}
	return table[LangEN]
}
