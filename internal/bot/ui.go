package bot

import "bgbot/internal/content"

// uiText holds the interface strings per target language. Keys absent from a
// language fall back to English.
var uiText = map[string]map[string]string{
	content.LangEng: {
		"welcome_back":         "Welcome back! 👋",
		"active_lesson":        "You have an active lesson in",
		"what_to_do":           "What would you like to do?",
		"resume_lesson":        "✅ Resume lesson",
		"start_new":            "❌ Start new lesson",
		"select_language":      "Select your learning language:",
		"select_level":         "Select your learning level:",
		"select_category":      "Select a lesson category:",
		"no_categories":        "No categories available",
		"show_translation":     "📖 Show translation",
		"add_favourite":        "⭐ Add to favourites",
		"previous":             "⬅️ Previous",
		"next":                 "Next ➡️",
		"exit_lesson":          "❌ Exit lesson",
		"choose_another":       "📚 Choose another category",
		"main_menu":            "🏠 Main menu",
		"lesson_started":       "🎓 Lesson started! Good luck!",
		"translation_revealed": "🎯 Translation revealed! 👀",
		"next_clicked":         "➡️ Next!",
		"previous_clicked":     "⬅️ Previous!",
		"congratulations":      "🎉 CONGRATULATIONS! 🎉",
		"lesson_completed":     "You completed the",
		"sentences_mastered":   "sentences mastered",
		"great_job":            "💪 Great job! Ready for the next category?",
		"at_beginning":         "✨ You're at the beginning!",
		"no_sentences":         "❌ No sentences available.",
		"error_occurred":       "Error occurred",
		"progress_title":       "📊 <b>Your Learning Progress</b>",
		"progress_no_lessons":  "📚 No lessons started yet. Use /start to begin!",
		"favourite_added":      "⭐ Added to favourites!",
		"favourite_exists":     "⭐ Already in favourites",
		"favourites_empty":     "⭐ You don't have any favourite sentences yet!\n\nUse the ⭐ button during lessons to add sentences to your favourites.",
	},
	content.LangUa: {
		"welcome_back":         "Ласкаво просимо назад! 👋",
		"active_lesson":        "У вас є активний урок у",
		"what_to_do":           "Що б ви хотіли робити?",
		"resume_lesson":        "✅ Продовжити урок",
		"start_new":            "❌ Почати новий урок",
		"select_language":      "Виберіть мову навчання:",
		"select_level":         "Виберіть рівень навчання:",
		"select_category":      "Виберіть категорію уроку:",
		"no_categories":        "Категорії недоступні",
		"show_translation":     "📖 Показати переклад",
		"add_favourite":        "⭐ Додати до улюблених",
		"previous":             "⬅️ Попередній",
		"next":                 "Наступний ➡️",
		"exit_lesson":          "❌ Вийти з уроку",
		"choose_another":       "📚 Вибрати іншу категорію",
		"main_menu":            "🏠 Головне меню",
		"lesson_started":       "🎓 Урок розпочався! Удачі!",
		"translation_revealed": "🎯 Переклад розкрито! 👀",
		"next_clicked":         "➡️ Далі!",
		"previous_clicked":     "⬅️ Назад!",
		"congratulations":      "🎉 ВІТАЄМО! 🎉",
		"lesson_completed":     "Ви завершили",
		"sentences_mastered":   "речення засвоєно",
		"great_job":            "💪 Чудова робота! Готові до наступної категорії?",
		"at_beginning":         "✨ Ви на початку!",
		"no_sentences":         "❌ Немає доступних речень.",
		"error_occurred":       "Сталася помилка",
		"progress_title":       "📊 <b>Ваш прогрес навчання</b>",
		"progress_no_lessons":  "📚 Уроки ще не розпочаті. Використайте /start для початку!",
	},
	content.LangKharkiv: {
		"welcome_back":         "Добро пожаловать назад! 👋",
		"active_lesson":        "У вас есть активный урок в",
		"what_to_do":           "Шо вы хотели бы делать?",
		"resume_lesson":        "✅ Продолжить урок",
		"start_new":            "❌ Начать новый урок",
		"select_language":      "Выберите язык обучения:",
		"select_level":         "Выберите уровень обучения:",
		"select_category":      "Выберите категорию урока:",
		"no_categories":        "Категории недоступны",
		"show_translation":     "📖 Показать перевод",
		"add_favourite":        "⭐ Добавить в избранное",
		"previous":             "⬅️ Предыдущий",
		"next":                 "Следующий ➡️",
		"exit_lesson":          "❌ Выйти из урока",
		"choose_another":       "📚 Выбрать другую категорию",
		"main_menu":            "🏠 Главное меню",
		"lesson_started":       "🎓 Урок начался! Удачи!",
		"translation_revealed": "🎯 Перевод раскрыт! 👀",
		"next_clicked":         "➡️ Дальше!",
		"previous_clicked":     "⬅️ Назад!",
		"congratulations":      "🎉 ПОЗДРАВЛЯЕМ! 🎉",
		"lesson_completed":     "Вы завершили",
		"sentences_mastered":   "предложений освоено",
		"great_job":            "💪 Отличная работа! Готовы к следующей категории?",
		"at_beginning":         "✨ Вы в начале!",
		"no_sentences":         "❌ Нет доступных предложений.",
		"error_occurred":       "Произошла ошибка",
		"progress_title":       "📊 <b>Ваш прогресс обучения</b>",
		"progress_no_lessons":  "📚 Уроки еще не начаты. Используйте /start для начала!",
	},
}

// getUIText returns the interface string for key in the given language,
// falling back to English, then to the key itself.
func getUIText(key, language string) string {
	if t, ok := uiText[language]; ok {
		if s, ok := t[key]; ok {
			return s
		}
	}
	if s, ok := uiText[content.LangEng][key]; ok {
		return s
	}
	return key
}
