package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	require.Equal(t, LangFR, Resolve("fr"))
	require.Equal(t, LangEN, Resolve("en"))
	require.Equal(t, LangEN, Resolve("de"))
	require.Equal(t, LangEN, Resolve(""))
}

func TestMatchButtonAcrossLocales(t *testing.T) {
	cases := map[string]Button{
		"💰 Mon Solde 💰":         BtnBalance,
		"💰 My Balance 💰":        BtnBalance,
		"Partager ↗️":             BtnShare,
		"Share ↗️":                BtnShare,
		"Bonus 🎁":                BtnBonus,
		"🚩 Tâche":                BtnTasks,
		"🚩 Task":                 BtnTasks,
		"Effectuer un Retrait 🏦": BtnWithdraw,
		"Make a Withdrawal 🏦":    BtnWithdraw,
		"📌 Ajoutez un numéro":    BtnAddNumber,
		"📌 Add a Number":         BtnAddNumber,
		"📋 Procédure 📋":         BtnProcedure,
		"📋 Procedure 📋":         BtnProcedure,
	}

	for text, want := range cases {
		got, ok := MatchButton(text)
		require.True(t, ok, "caption %q should match", text)
		require.Equal(t, want, got, "caption %q", text)
	}

	_, ok := MatchButton("40000")
	require.False(t, ok)
}

func TestMainKeyboardCoversAllButtons(t *testing.T) {
	for _, lang := range []Lang{LangFR, LangEN} {
		seen := map[Button]bool{}
		for _, row := range MainKeyboard(lang) {
			for _, caption := range row {
				button, ok := MatchButton(caption)
				require.True(t, ok, "keyboard caption %q must be matchable", caption)
				seen[button] = true
			}
		}
		for _, b := range []Button{BtnBalance, BtnShare, BtnBonus, BtnTasks, BtnWithdraw, BtnAddNumber, BtnProcedure} {
			require.True(t, seen[b], "lang %s missing button %d", lang, b)
		}
	}
}

func TestMessagesDefined(t *testing.T) {
	for _, lang := range []Lang{LangFR, LangEN} {
		m := T(lang)
		require.NotEmpty(t, m.Start)
		require.NotEmpty(t, m.Menu)
		require.NotEmpty(t, m.InvitedBy("X"))
		require.NotEmpty(t, m.BonusWait(1, 2, 3))
		require.NotEmpty(t, m.Account(100, 2))
		require.NotEmpty(t, m.TaskLine("https://example.org", 500))
	}
}
