package i18n

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported languages, the first one is the fallback.
var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

// Message keys.
const (
	UserCreated    = "user_created"
	UserUpdated    = "user_updated"
	UserDeleted    = "user_deleted"
	PostCreated    = "post_created"
	PostUpdated    = "post_updated"
	PostDeleted    = "post_deleted"
	CommentCreated = "comment_created"
	CommentDeleted = "comment_deleted"
	NotFound       = "not_found"
	InvalidParams  = "invalid_params"
	InvalidBody    = "invalid_body"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		UserCreated:    "User created successfully",
		UserUpdated:    "User updated successfully",
		UserDeleted:    "User deleted successfully",
		PostCreated:    "Post created successfully",
		PostUpdated:    "Post updated successfully",
		PostDeleted:    "Post deleted successfully",
		CommentCreated: "Comment created successfully",
		CommentDeleted: "Comment deleted successfully",
		NotFound:       "Resource not found",
		InvalidParams:  "Invalid parameters",
		InvalidBody:    "Invalid request body",
	},
	language.French: {
		UserCreated:    "Utilisateur créé avec succès",
		UserUpdated:    "Utilisateur mis à jour avec succès",
		UserDeleted:    "Utilisateur supprimé avec succès",
		PostCreated:    "Publication créée avec succès",
		PostUpdated:    "Publication mise à jour avec succès",
		PostDeleted:    "Publication supprimée avec succès",
		CommentCreated: "Commentaire créé avec succès",
		CommentDeleted: "Commentaire supprimé avec succès",
		NotFound:       "Ressource non trouvée",
		InvalidParams:  "Paramètres invalides",
		InvalidBody:    "Corps de requête invalide",
	},
}

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// SetString only fails on malformed tags or messages
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Lang is a negotiated response language.
type Lang struct {
	tag language.Tag
}

// English is the default language.
var English = Lang{tag: language.English}

// French is the other supported language.
var French = Lang{tag: language.French}

// Parse negotiates a language from an Accept-Language header value.
func Parse(header string) Lang {
	if header == "" {
		return English
	}
	_, idx := language.MatchStrings(matcher, header)
	return Lang{tag: supported[idx]}
}

// FromCtx negotiates the language of a Fiber request.
func FromCtx(c *fiber.Ctx) Lang {
	return Parse(c.Get(fiber.HeaderAcceptLanguage))
}

// Code returns the two letter language code.
func (l Lang) Code() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Translate returns the message for key, or key itself when unknown.
func (l Lang) Translate(key string) string {
	if _, known := translations[language.English][key]; !known {
		return key
	}
	return message.NewPrinter(l.tag, message.Catalog(cat)).Sprintf(key)
}

// FormatDate renders t in the language's date format. The zero time renders as "".
func (l Lang) FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.UTC()
	if l.tag == language.French {
		return t.Format("02/01/2006 à 15:04")
	}
	return t.Format("01/02/2006 at 3:04 PM")
}

// FormatDatePtr is FormatDate for optional dates, nil renders as nil.
func (l Lang) FormatDatePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := l.FormatDate(*t)
	return &s
}
