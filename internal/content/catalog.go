package content

// Folder identifiers. Folders are independent, parallel learning levels.
const (
	FolderBasic        = "basic"
	FolderMiddle       = "middle"
	FolderMiddleSlavic = "middle-slavic"
	FolderMisc         = "misc"
	FolderComparison   = "language-comparison"
	FolderExpressions  = "expressions"
)

// Target language codes. Bulgarian is always the source language.
const (
	LangEng     = "eng"
	LangUa      = "ua"
	LangKharkiv = "kharkiv"
)

// FolderInfo describes a learning folder for menus and reports.
type FolderInfo struct {
	ID          string
	Name        string
	Emoji       string
	Description string
}

// LanguageInfo describes a target language.
type LanguageInfo struct {
	Code  string
	Name  string
	Emoji string
}

// CategoryInfo carries display metadata for a category.
type CategoryInfo struct {
	Name  string
	Emoji string
}

// Folders lists all learning folders in menu order.
var Folders = []FolderInfo{
	{ID: FolderBasic, Name: "Basic", Emoji: "🌱", Description: "Simple sentences - no grammar explanation"},
	{ID: FolderMiddle, Name: "Middle", Emoji: "🌿", Description: "Sentences with grammar tags and explanations"},
	{ID: FolderMiddleSlavic, Name: "Middle Slavic", Emoji: "🔗", Description: "Advanced: false friends, Slavic comparisons, cultural notes"},
	{ID: FolderMisc, Name: "Miscellaneous", Emoji: "📖", Description: "Folklore, idioms, names, slang, weather"},
	{ID: FolderComparison, Name: "Language Comparison", Emoji: "🌐", Description: "Grammar, vocabulary, phonetics, syntax comparisons"},
	{ID: FolderExpressions, Name: "Expressions", Emoji: "💬", Description: "Food, love, rakiya, soft insults"},
}

// Languages lists the selectable target languages.
var Languages = []LanguageInfo{
	{Code: LangEng, Name: "English", Emoji: "🇬🇧"},
	{Code: LangUa, Name: "Українська", Emoji: "🇺🇦"},
	{Code: LangKharkiv, Name: "Kharkiv (Ukrainian Dialect)", Emoji: "🎭"},
}

// categories maps category ids to display metadata across all folders.
var categories = map[string]CategoryInfo{
	"direction":       {Name: "Direction", Emoji: "🗺️"},
	"greetings":       {Name: "Greetings", Emoji: "👋"},
	"help":            {Name: "Help", Emoji: "🆘"},
	"restaurant":      {Name: "Restaurant", Emoji: "🍽️"},
	"shopping":        {Name: "Shopping", Emoji: "🛒"},
	"aorist-past":     {Name: "Aorist Past", Emoji: "⏮️"},
	"future":          {Name: "Future", Emoji: "⏭️"},
	"imperfect-past":  {Name: "Imperfect Past", Emoji: "⏪"},
	"present":         {Name: "Present", Emoji: "⏱️"},
	"question":        {Name: "Question", Emoji: "❓"},
	"false-friends":   {Name: "False Friends", Emoji: "⚠️"},
	"modern-lexicon":  {Name: "Modern Lexicon", Emoji: "📱"},
	"swear-words":     {Name: "Swear Words", Emoji: "🤬"},
	"folkclore":       {Name: "Folklore", Emoji: "🎭"},
	"idioms":          {Name: "Idioms", Emoji: "💭"},
	"names":           {Name: "Names", Emoji: "👤"},
	"political-slang": {Name: "Political Slang", Emoji: "🗣️"},
	"weather":         {Name: "Weather", Emoji: "⛅"},
	"youth-slang":     {Name: "Youth Slang", Emoji: "🧑‍🎓"},
	"grammar":         {Name: "Grammar", Emoji: "📐"},
	"vocabulary":      {Name: "Vocabulary", Emoji: "📖"},
	"phonetics":       {Name: "Phonetics", Emoji: "🔊"},
	"syntax":          {Name: "Syntax", Emoji: "⚙️"},
	"food":            {Name: "Food", Emoji: "🍕"},
	"love":            {Name: "Love", Emoji: "❤️"},
	"rakiya":          {Name: "Rakiya", Emoji: "🥃"},
	"soft-insult":     {Name: "Soft Insults", Emoji: "😏"},
}

// FolderByID returns metadata for a folder id, or a generic fallback.
func FolderByID(id string) FolderInfo {
	for _, f := range Folders {
		if f.ID == id {
			return f
		}
	}
	return FolderInfo{ID: id, Name: id, Emoji: "📚"}
}

// CategoryByID returns metadata for a category id, or a generic fallback.
func CategoryByID(id string) CategoryInfo {
	if c, ok := categories[id]; ok {
		return c
	}
	return CategoryInfo{Name: id, Emoji: "📚"}
}

// LanguageByCode returns metadata for a language code, defaulting to English.
func LanguageByCode(code string) LanguageInfo {
	for _, l := range Languages {
		if l.Code == code {
			return l
		}
	}
	return Languages[0]
}

// ValidLanguage reports whether code is a selectable target language.
func ValidLanguage(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// ValidFolder reports whether id names a known folder.
func ValidFolder(id string) bool {
	for _, f := range Folders {
		if f.ID == id {
			return true
		}
	}
	return false
}
