package bot

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bgbot/internal/content"
	"bgbot/internal/models"
)

func sampleSentence() *models.Sentence {
	return &models.Sentence{
		Folder:   "basic",
		Category: "greetings",
		BG:       "Здравей, как си?",
		Eng:      "Hello, how are you?",
		Ru:       "Привет, как дела?",
		Ua:       "Привіт, як справи?",
	}
}

func TestBuildLessonTextDeterministic(t *testing.T) {
	s := sampleSentence()
	a := buildLessonText(s, "basic", "greetings", 0, 3, content.LangEng, false)
	b := buildLessonText(s, "basic", "greetings", 0, 3, content.LangEng, false)
	require.Equal(t, a, b)
}

func TestBuildLessonTextHiddenAndRevealed(t *testing.T) {
	s := sampleSentence()

	hidden := buildLessonText(s, "basic", "greetings", 0, 3, content.LangEng, false)
	assert.Contains(t, hidden, "<tg-spoiler>Hello, how are you?</tg-spoiler>")
	assert.Contains(t, hidden, "GREETINGS")
	assert.Contains(t, hidden, "1/3")
	assert.Contains(t, hidden, s.BG)

	revealed := buildLessonText(s, "basic", "greetings", 0, 3, content.LangEng, true)
	assert.NotContains(t, revealed, "<tg-spoiler>")
	assert.Contains(t, revealed, "🎯 <b>Hello, how are you?</b>")
}

func TestBuildLessonTextTranslationPerLanguage(t *testing.T) {
	s := sampleSentence()

	assert.Contains(t, buildLessonText(s, "basic", "greetings", 0, 3, content.LangUa, false), s.Ua)
	// kharkiv readers get the Russian text
	assert.Contains(t, buildLessonText(s, "basic", "greetings", 0, 3, content.LangKharkiv, false), s.Ru)
}

func TestBuildLessonTextGrammarOnlyInMiddle(t *testing.T) {
	s := sampleSentence()
	s.Grammar = []string{"present", "question"}
	s.Explanation = "Present tense question."

	middle := buildLessonText(s, content.FolderMiddle, "present", 0, 1, content.LangEng, false)
	assert.Contains(t, middle, "#present #question")
	assert.Contains(t, middle, "Present tense question.")

	basic := buildLessonText(s, content.FolderBasic, "present", 0, 1, content.LangEng, false)
	assert.NotContains(t, basic, "#present")
}

func TestBuildLessonTextGrammarNeedsBothFields(t *testing.T) {
	s := sampleSentence()
	s.Grammar = []string{"present"}

	text := buildLessonText(s, content.FolderMiddle, "present", 0, 1, content.LangEng, false)
	assert.NotContains(t, text, "#present")
}

func TestBuildLessonTextSlavicAnnotations(t *testing.T) {
	s := sampleSentence()
	s.Tag = "false-friend"
	s.FalseFriend = "not what it looks like"
	s.Comparison = "shared Slavic root"
	s.RuleEng = "watch the stress"
	s.RuleRu = "следите за ударением"

	text := buildLessonText(s, content.FolderMiddleSlavic, "false-friends", 0, 1, content.LangEng, false)
	assert.Contains(t, text, "FALSE FRIEND!")
	assert.Contains(t, text, "not what it looks like")
	assert.Contains(t, text, "Slavic Bridge")
	assert.Contains(t, text, "watch the stress")

	ruText := buildLessonText(s, content.FolderMiddleSlavic, "false-friends", 0, 1, content.LangKharkiv, false)
	assert.Contains(t, ruText, "следите за ударением")
	assert.NotContains(t, ruText, "watch the stress")
}

func TestBuildLessonTextRuleInExpressions(t *testing.T) {
	s := sampleSentence()
	s.RuleEng = "used between friends only"

	text := buildLessonText(s, content.FolderExpressions, "food", 0, 1, content.LangEng, false)
	assert.Contains(t, text, "used between friends only")

	// rules are not rendered in basic
	basic := buildLessonText(s, content.FolderBasic, "food", 0, 1, content.LangEng, false)
	assert.NotContains(t, basic, "used between friends only")
}

func TestBuildLessonTextNilSentence(t *testing.T) {
	text := buildLessonText(nil, "basic", "greetings", 0, 0, content.LangEng, false)
	assert.Equal(t, getUIText("no_sentences", content.LangEng), text)
}

func TestPadForButtonsReachesTargetWidth(t *testing.T) {
	padded := padForButtons("<b>short</b>")

	require.True(t, strings.HasSuffix(padded, joiner))
	visible := htmlTagRe.ReplaceAllString(padded, "")
	widest := 0
	for _, line := range strings.Split(visible, "\n") {
		if w := uniseg.GraphemeClusterCount(line); w > widest {
			widest = w
		}
	}
	assert.GreaterOrEqual(t, widest, padTargetWidth)
}

func TestPadForButtonsLeavesWideTextAlone(t *testing.T) {
	wide := strings.Repeat("x", padTargetWidth+5)
	assert.Equal(t, wide, padForButtons(wide))
}

func TestPadForButtonsCountsGraphemesNotBytes(t *testing.T) {
	// flag emoji are multi-codepoint but count as one visible unit each
	text := strings.Repeat("🇧🇬", 10)
	padded := padForButtons(text)
	require.NotEqual(t, text, padded)

	visible := strings.TrimSuffix(padded, joiner)
	assert.Equal(t, padTargetWidth, uniseg.GraphemeClusterCount(visible))
}

func TestBuildSkeleton(t *testing.T) {
	text := buildSkeleton("greetings", 1, 3)
	assert.Contains(t, text, "GREETINGS")
	assert.Contains(t, text, "2/3")
	assert.Contains(t, text, "▮")
	assert.True(t, strings.HasSuffix(text, joiner))
}

func TestBuildCompletionText(t *testing.T) {
	text := buildCompletionText("greetings", 3, content.LangEng)
	assert.Contains(t, text, "CONGRATULATIONS")
	assert.Contains(t, text, "GREETINGS")
	assert.Contains(t, text, "3/3")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░ 0%", progressBar(0, 10))
	assert.Equal(t, "▓▓▓▓▓░░░░░ 50%", progressBar(5, 10))
	assert.Equal(t, "▓▓▓▓▓▓▓▓▓▓ 100%", progressBar(10, 10))
	assert.Equal(t, "░░░░░░░░░░ 0%", progressBar(0, 0))
}

func TestBuildFavouritesText(t *testing.T) {
	favs := []models.Favourite{
		{BG: "Наздраве!", Eng: "Cheers!", Ru: "Будем!", Ua: "Будьмо!"},
		{BG: "Благодаря.", Eng: "Thank you."},
	}

	text := buildFavouritesText(favs, content.LangEng)
	assert.Contains(t, text, "2 saved")
	assert.Contains(t, text, "1. Наздраве!")
	assert.Contains(t, text, "<tg-spoiler>Cheers!</tg-spoiler>")

	// missing translations fall back to English
	ua := buildFavouritesText(favs, content.LangUa)
	assert.Contains(t, ua, "Будьмо!")
	assert.Contains(t, ua, "Thank you.")

	assert.Equal(t, getUIText("favourites_empty", content.LangEng), buildFavouritesText(nil, content.LangEng))
}
