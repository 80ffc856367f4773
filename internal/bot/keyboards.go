package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bgbot/internal/content"
)

// Callback data tokens. Prefixed tokens carry an argument after the
// separator.
const (
	cbLangPrefix      = "lang_to_"
	cbFolderPrefix    = "folder:"
	cbCategoryPrefix  = "category:"
	cbStartLesson     = "start_lesson"
	cbContinueLesson  = "continue_lesson"
	cbShowTranslation = "show_translation"
	cbNext            = "next"
	cbPrev            = "prev"
	cbExit            = "exit"
	cbAddFavourite    = "fav:add"
)

// languageKeyboard offers the target-language choices.
func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(content.Languages))
	for _, l := range content.Languages {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Emoji+" "+l.Name, cbLangPrefix+l.Code),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// folderKeyboard offers the learning folders.
func folderKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(content.Folders))
	for _, f := range content.Folders {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(f.Emoji+" "+f.Name, cbFolderPrefix+f.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// categoryKeyboard offers the categories of a folder, two per row.
func categoryKeyboard(categories []string, languageTo string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, id := range categories {
		c := content.CategoryByID(id)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c.Emoji+" "+c.Name, cbCategoryPrefix+id))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(getUIText("main_menu", languageTo), cbExit),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// lessonKeyboard is the action layout under a lesson card. The reveal
// button disappears once the translation is shown.
func lessonKeyboard(languageTo string, revealed bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if !revealed {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(getUIText("show_translation", languageTo), cbShowTranslation),
			tgbotapi.NewInlineKeyboardButtonData(getUIText("add_favourite", languageTo), cbAddFavourite),
		))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(getUIText("add_favourite", languageTo), cbAddFavourite),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(getUIText("previous", languageTo), cbPrev),
			tgbotapi.NewInlineKeyboardButtonData(getUIText("next", languageTo), cbNext),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(getUIText("exit_lesson", languageTo), cbExit),
		),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// completionKeyboard follows the end-of-category summary.
func completionKeyboard(languageTo string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(getUIText("choose_another", languageTo), cbStartLesson),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(getUIText("main_menu", languageTo), cbExit),
		),
	)
}

// welcomeBackKeyboard offers resuming the active lesson or starting over.
func welcomeBackKeyboard(languageTo string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(getUIText("resume_lesson", languageTo), cbContinueLesson),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(getUIText("start_new", languageTo), cbStartLesson),
		),
	)
}
