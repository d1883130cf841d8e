package i18n

// Button identifies a main-menu reply-keyboard button independently of the
// locale its caption was rendered in.
type Button int

const (
	BtnUnknown Button = iota
	BtnBalance
	BtnShare
	BtnBonus
	BtnTasks
	BtnWithdraw
	BtnAddNumber
	BtnProcedure
)

// captions holds every caption a button is known under, across both locales.
// Reply keyboards echo the caption back as plain text, so incoming messages
// have to be matched against all variants.
var captions = map[string]Button{
	"💰 Mon Solde 💰":          BtnBalance,
	"💰 My Balance 💰":         BtnBalance,
	"Partager ↗️":              BtnShare,
	"Share ↗️":                 BtnShare,
	"Bonus 🎁":                 BtnBonus,
	"🚩 Tâche":                 BtnTasks,
	"🚩 Task":                  BtnTasks,
	"Effectuer un Retrait 🏦":  BtnWithdraw,
	"Make a Withdrawal 🏦":     BtnWithdraw,
	"📌 Ajoutez un numéro":     BtnAddNumber,
	"📌 Add a Number":          BtnAddNumber,
	"📋 Procédure 📋":          BtnProcedure,
	"📋 Procedure 📋":          BtnProcedure,
}

// MatchButton resolves a literal message text to a menu button, across both
// locales.
func MatchButton(text string) (Button, bool) {
	b, ok := captions[text]
	return b, ok
}

// mainLayout is the caption grid of the main reply keyboard per locale.
var mainLayout = map[Lang][][]string{
	LangFR: {
		{"💰 Mon Solde 💰", "Partager ↗️"},
		{"Bonus 🎁", "🚩 Tâche"},
		{"Effectuer un Retrait 🏦"},
		{"📌 Ajoutez un numéro", "📋 Procédure 📋"},
	},
	LangEN: {
		{"💰 My Balance 💰", "Share ↗️"},
		{"Bonus 🎁", "🚩 Task"},
		{"Make a Withdrawal 🏦"},
		{"📌 Add a Number", "📋 Procedure 📋"},
	},
}

// MainKeyboard returns the caption rows of the main menu for the locale.
func MainKeyboard(lang Lang) [][]string {
	if rows, ok := mainLayout[lang]; ok {
		return rows
	}
	return mainLayout[LangEN]
}
