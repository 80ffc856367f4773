package bot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"

	"bgbot/internal/content"
	"bgbot/internal/models"
)

const (
	// padTargetWidth is the visible line width messages are padded to, so
	// inline buttons stretch to a consistent maximal width.
	padTargetWidth = 50
	// joiner is a zero-width joiner appended after the padding spaces to
	// keep the client from trimming them.
	joiner = "\u200d"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// translationFor picks the sentence translation for the target language.
// Kharkiv readers get the Russian text; anything missing falls back to
// English.
func translationFor(s *models.Sentence, languageTo string) string {
	var t string
	switch languageTo {
	case content.LangKharkiv:
		t = s.Ru
	case content.LangUa:
		t = s.Ua
	default:
		t = s.Eng
	}
	if t == "" {
		t = s.Eng
	}
	return t
}

// ruleFor picks the per-language usage rule text, empty when the sentence
// carries none for that language.
func ruleFor(s *models.Sentence, languageTo string) string {
	switch languageTo {
	case content.LangKharkiv:
		return s.RuleRu
	case content.LangUa:
		return s.RuleUA
	default:
		return s.RuleEng
	}
}

// annotator appends one optional annotation block to the lesson text.
type annotator func(b *strings.Builder, s *models.Sentence, languageTo string)

// folderAnnotations selects which annotation blocks each folder renders.
var folderAnnotations = map[string][]annotator{
	content.FolderMiddle:       {grammarNote},
	content.FolderMiddleSlavic: {falseFriendNote, comparisonNote, ruleNote},
	content.FolderMisc:         {ruleNote},
	content.FolderComparison:   {ruleNote},
	content.FolderExpressions:  {ruleNote},
}

func grammarNote(b *strings.Builder, s *models.Sentence, _ string) {
	if len(s.Grammar) == 0 || s.Explanation == "" {
		return
	}
	tags := make([]string, len(s.Grammar))
	for i, tag := range s.Grammar {
		tags[i] = "#" + tag
	}
	fmt.Fprintf(b, "\n\n📝 <b>Grammar:</b> %s\n💡 <i>%s</i>", strings.Join(tags, " "), s.Explanation)
}

func falseFriendNote(b *strings.Builder, s *models.Sentence, _ string) {
	if s.Tag != "false-friend" || s.FalseFriend == "" {
		return
	}
	fmt.Fprintf(b, "\n\n⚠️ <b>FALSE FRIEND!</b>\n🔴 <i>%s</i>", s.FalseFriend)
}

func comparisonNote(b *strings.Builder, s *models.Sentence, _ string) {
	if s.Comparison == "" {
		return
	}
	fmt.Fprintf(b, "\n\n🔗 <b>Slavic Bridge:</b> <i>%s</i>", s.Comparison)
}

func ruleNote(b *strings.Builder, s *models.Sentence, languageTo string) {
	if rule := ruleFor(s, languageTo); rule != "" {
		fmt.Fprintf(b, "\n\n📖 <i>%s</i>", rule)
	}
}

// buildLessonText composes the full HTML lesson message for one sentence.
// Pure: same inputs always produce the same output.
func buildLessonText(s *models.Sentence, folder, category string, index, total int, languageTo string, revealed bool) string {
	if s == nil {
		return getUIText("no_sentences", languageTo)
	}

	translation := translationFor(s, languageTo)
	translationText := fmt.Sprintf("<tg-spoiler>%s</tg-spoiler>", translation)
	if revealed {
		translationText = fmt.Sprintf("🎯 <b>%s</b>", translation)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>📚 %s | 🇧🇬 → %s</b>\n\n⏳ <b>%d/%d</b>\n\n%s\n\n%s",
		strings.ToUpper(category), content.LanguageByCode(languageTo).Emoji,
		index+1, total, s.BG, translationText)

	for _, annotate := range folderAnnotations[folder] {
		annotate(&b, s, languageTo)
	}

	return padForButtons(b.String())
}

// buildSkeleton produces the dimmed-block placeholder shown while the real
// content of the next card is being prepared.
func buildSkeleton(category string, index, total int) string {
	text := fmt.Sprintf("<b>📚 %s | ⏳ %d/%d</b>\n\n<i>%s</i>\n\n<tg-spoiler><i>%s</i></tg-spoiler>",
		strings.ToUpper(category), index+1, total,
		strings.Repeat("▮", 25), strings.Repeat("▮", 22))
	return padForButtons(text)
}

// buildCompletionText composes the end-of-category congratulations message.
func buildCompletionText(category string, total int, languageTo string) string {
	return fmt.Sprintf("%s\n\n✅ %s <b>%s</b> lesson!\n\n📊 <b>%d/%d</b> %s\n\n%s",
		getUIText("congratulations", languageTo),
		getUIText("lesson_completed", languageTo),
		strings.ToUpper(category),
		total, total,
		getUIText("sentences_mastered", languageTo),
		getUIText("great_job", languageTo))
}

// buildFavouritesText composes the saved-sentences list, most recent first.
func buildFavouritesText(favs []models.Favourite, languageTo string) string {
	if len(favs) == 0 {
		return getUIText("favourites_empty", languageTo)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>⭐ FAVOURITE WORDS</b>\n\n⏳ <b>%d saved</b>", len(favs))
	for i, f := range favs {
		translation := f.Eng
		switch languageTo {
		case content.LangKharkiv:
			if f.Ru != "" {
				translation = f.Ru
			}
		case content.LangUa:
			if f.Ua != "" {
				translation = f.Ua
			}
		}
		fmt.Fprintf(&b, "\n\n%d. %s\n<tg-spoiler>%s</tg-spoiler>", i+1, f.BG, translation)
	}
	return b.String()
}

// progressBar renders a 10-block mastery bar with a percentage.
func progressBar(mastered, total int) string {
	pct := 0
	if total > 0 {
		pct = mastered * 100 / total
	}
	filled := pct / 10
	if filled > 10 {
		filled = 10
	}
	return fmt.Sprintf("%s%s %d%%", strings.Repeat("▓", filled), strings.Repeat("░", 10-filled), pct)
}

// padForButtons extends the message with trailing spaces plus a zero-width
// joiner so its widest visible line reaches padTargetWidth grapheme
// clusters. Markup tags are ignored when measuring; text already at the
// target width is returned unchanged.
func padForButtons(text string) string {
	lines := strings.Split(htmlTagRe.ReplaceAllString(text, ""), "\n")
	for _, line := range lines {
		if uniseg.GraphemeClusterCount(line) >= padTargetWidth {
			return text
		}
	}
	pad := padTargetWidth - uniseg.GraphemeClusterCount(lines[len(lines)-1])
	return text + strings.Repeat(" ", pad) + joiner
}
