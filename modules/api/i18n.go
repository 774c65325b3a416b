package api

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

const localeKey = "locale"

var supportedLocales = []language.Tag{
	language.English, // default
	language.Spanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

var translations = map[string]map[string]string{
	"en": {
		"task_created":   "Task created successfully",
		"task_completed": "Task completed",
	},
	"es": {
		"task_created":   "Tarea creada exitosamente",
		"task_completed": "Tarea completada",
	},
}

// negotiateLocale picks the supported base language closest to an Accept-Language value.
func negotiateLocale(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "en"
	}
	_, index, _ := localeMatcher.Match(tags...)
	base, _ := supportedLocales[index].Base()
	return base.String()
}

// translate returns the message for key in locale, or key itself when unknown.
func translate(key, locale string) string {
	if msg, ok := translations[locale][key]; ok {
		return msg
	}
	return key
}

// localeMiddleware stores the negotiated locale and echoes it in Content-Language.
func localeMiddleware(c *fiber.Ctx) error {
	locale := negotiateLocale(c.Get(fiber.HeaderAcceptLanguage))
	c.Locals(localeKey, locale)
	c.Set(fiber.HeaderContentLanguage, locale)
	return c.Next()
}

func localeOf(c *fiber.Ctx) string {
	if locale, ok := c.Locals(localeKey).(string); ok {
		return locale
	}
	return "en"
}
