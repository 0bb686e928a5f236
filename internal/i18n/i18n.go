// Package i18n translates the user-facing messages of the storefront API.
// Messages are looked up by key in the locale negotiated from the
// Accept-Language header, falling back to English.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is used when no supported language is requested.
	DefaultLocale = "en"
	// AcceptLanguageHeader carries the client's language preferences.
	AcceptLanguageHeader = "Accept-Language"
)

// locales lists the supported locales in the order given to the matcher.
var locales = []string{DefaultLocale, "pt", "nl"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Portuguese,
	language.Dutch,
})

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator looks messages up in a locale catalog.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator returns a translator over the built-in catalog.
func NewTranslator() *Translator {
	return &Translator{messages: catalog}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale. A locale without the key
// falls back to English, and an unknown key is returned as is.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Format translates key and substitutes {param} placeholders from params.
func (t *Translator) Format(key, locale string, params map[string]string) string {
	msg := t.Translate(key, locale)
	if len(params) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// GetLocale negotiates the response locale from Accept-Language, honouring
// quality values. Unsupported or malformed preferences yield DefaultLocale.
func GetLocale(c *gin.Context) string {
	return NegotiateLocale(c.GetHeader(AcceptLanguageHeader))
}

// NegotiateLocale picks the best supported locale for an Accept-Language value.
func NegotiateLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return locales[idx]
}

// catalog holds every message per supported locale.
var catalog = map[string]map[string]string{
	"en": {
		// Error messages
		"error.invalid_request":        "Invalid request",
		"error.invalid_request_body":   "Invalid request body",
		"error.internal_error":         "An unexpected error occurred",
		"error.unauthorized":           "Unauthorized",
		"error.invalid_credentials":    "Incorrect login or password",
		"error.api_key_required":       "API key is required",
		"error.invalid_api_key":        "Invalid API key",
		"error.forbidden":              "Forbidden",
		"error.not_found":              "Not found",
		"error.rate_limit_exceeded":    "Too many requests, please try again later",
		"error.conflict":               "Conflict",
		"error.validation_failed":      "Validation failed",
		"error.invalid_token":          "Invalid or expired token",
		"error.token_required":         "Authentication token is required",
		"error.timeout":                "The request took too long",
		"error.service_unavailable":    "Service temporarily unavailable",
		"error.idempotency.in_flight":  "A request with this Idempotency-Key is still being processed",
		"error.idempotency.key_reused": "This Idempotency-Key was already used for a different request",

		// Storefront errors
		"error.cart.owner_required":             "A cart session or login is required",
		"error.cart.session_required":           "The X-Cart-ID header is required to merge a guest cart",
		"error.cart.unavailable":                "Your cart could not be loaded, please try again",
		"error.product_not_found":               "Product not found",
		"error.category_not_found":              "Category not found",
		"error.invalid_product":                 "Invalid product data",
		"error.slug_taken":                      "That slug is already in use",
		"error.order_not_found":                 "Order not found",
		"error.order.empty_cart":                "Your cart is empty",
		"error.order.checkout_incomplete":       "A shipping address and payment method are required",
		"error.order.invalid_status_transition": "The order cannot be moved to that status",
		"error.out_of_stock":                    "Not enough stock",
		"error.invalid_pricing":                 "Invalid pricing settings",
		"error.pricing_not_found":               "Pricing settings not found",
		"error.invalid_payment_method":          "Unsupported payment method",
		"error.account_exists":                  "An account with that email or username already exists",
		"error.account_not_found":               "Account not found",

		// Cart notices
		"cart.notice.added":        "{name} was added to your cart",
		"cart.notice.incremented":  "{name} quantity increased to {quantity}",
		"cart.notice.updated":      "{name} quantity updated to {quantity}",
		"cart.notice.removed":      "{name} was removed from your cart",
		"cart.notice.cleared":      "Your cart is now empty",
		"cart.notice.merged":       "{quantity} product(s) from your previous cart were added",
		"cart.notice.out_of_stock": "Only {available} of {name} available",
		"cart.notice.unchanged":    "Your cart was not changed",

		// Success messages
		"success.order_placed": "Your order has been placed",
	},
	"pt": {
		// Error messages
		"error.invalid_request":        "Requisição inválida",
		"error.invalid_request_body":   "Corpo da requisição inválido",
		"error.internal_error":         "Ocorreu um erro inesperado",
		"error.unauthorized":           "Não autorizado",
		"error.invalid_credentials":    "Login ou senha incorretos",
		"error.api_key_required":       "Chave de API é obrigatória",
		"error.invalid_api_key":        "Chave de API inválida",
		"error.forbidden":              "Proibido",
		"error.not_found":              "Não encontrado",
		"error.rate_limit_exceeded":    "Muitas requisições, tente novamente mais tarde",
		"error.conflict":               "Conflito",
		"error.validation_failed":      "Falha na validação",
		"error.invalid_token":          "Token inválido ou expirado",
		"error.token_required":         "Token de autenticação é obrigatório",
		"error.timeout":                "A requisição demorou demais",
		"error.service_unavailable":    "Serviço temporariamente indisponível",
		"error.idempotency.in_flight":  "Uma requisição com esta Idempotency-Key ainda está em processamento",
		"error.idempotency.key_reused": "Esta Idempotency-Key já foi usada em outra requisição",

		// Storefront errors
		"error.cart.owner_required":             "É necessária uma sessão de carrinho ou login",
		"error.cart.session_required":           "O cabeçalho X-Cart-ID é obrigatório para juntar o carrinho de visitante",
		"error.cart.unavailable":                "Não foi possível carregar o seu carrinho, tente novamente",
		"error.product_not_found":               "Produto não encontrado",
		"error.category_not_found":              "Categoria não encontrada",
		"error.invalid_product":                 "Dados do produto inválidos",
		"error.slug_taken":                      "Esse slug já está em uso",
		"error.order_not_found":                 "Pedido não encontrado",
		"error.order.empty_cart":                "O seu carrinho está vazio",
		"error.order.checkout_incomplete":       "Endereço de entrega e forma de pagamento são obrigatórios",
		"error.order.invalid_status_transition": "O pedido não pode passar para esse estado",
		"error.out_of_stock":                    "Estoque insuficiente",
		"error.invalid_pricing":                 "Configuração de preços inválida",
		"error.pricing_not_found":               "Configuração de preços não encontrada",
		"error.invalid_payment_method":          "Forma de pagamento não suportada",
		"error.account_exists":                  "Já existe uma conta com esse e-mail ou nome de usuário",
		"error.account_not_found":               "Conta não encontrada",

		// Cart notices
		"cart.notice.added":        "{name} foi adicionado ao carrinho",
		"cart.notice.incremented":  "Quantidade de {name} aumentada para {quantity}",
		"cart.notice.updated":      "Quantidade de {name} alterada para {quantity}",
		"cart.notice.removed":      "{name} foi removido do carrinho",
		"cart.notice.cleared":      "O seu carrinho está vazio",
		"cart.notice.merged":       "{quantity} produto(s) do carrinho anterior foram adicionados",
		"cart.notice.out_of_stock": "Apenas {available} unidade(s) de {name} disponível(is)",
		"cart.notice.unchanged":    "O seu carrinho não foi alterado",

		// Success messages
		"success.order_placed": "O seu pedido foi registrado",
	},
	"nl": {
		// Error messages
		"error.invalid_request":        "Ongeldig verzoek",
		"error.invalid_request_body":   "Ongeldige aanvraag body",
		"error.internal_error":         "Er is een onverwachte fout opgetreden",
		"error.unauthorized":           "Niet geautoriseerd",
		"error.invalid_credentials":    "Onjuiste login of wachtwoord",
		"error.api_key_required":       "API-sleutel is vereist",
		"error.invalid_api_key":        "Ongeldige API-sleutel",
		"error.forbidden":              "Verboden",
		"error.not_found":              "Niet gevonden",
		"error.rate_limit_exceeded":    "Te veel verzoeken, probeer het later opnieuw",
		"error.conflict":               "Conflict",
		"error.validation_failed":      "Validatie mislukt",
		"error.invalid_token":          "Ongeldig of verlopen token",
		"error.token_required":         "Authenticatietoken is vereist",
		"error.timeout":                "Het verzoek duurde te lang",
		"error.service_unavailable":    "Dienst tijdelijk niet beschikbaar",
		"error.idempotency.in_flight":  "Een verzoek met deze Idempotency-Key wordt nog verwerkt",
		"error.idempotency.key_reused": "Deze Idempotency-Key is al gebruikt voor een ander verzoek",

		// Storefront errors
		"error.cart.owner_required":             "Een winkelwagensessie of login is vereist",
		"error.cart.session_required":           "De X-Cart-ID header is vereist om een gastwinkelwagen samen te voegen",
		"error.cart.unavailable":                "Je winkelwagen kon niet worden geladen, probeer het opnieuw",
		"error.product_not_found":               "Product niet gevonden",
		"error.category_not_found":              "Categorie niet gevonden",
		"error.invalid_product":                 "Ongeldige productgegevens",
		"error.slug_taken":                      "Deze slug is al in gebruik",
		"error.order_not_found":                 "Bestelling niet gevonden",
		"error.order.empty_cart":                "Je winkelwagen is leeg",
		"error.order.checkout_incomplete":       "Een verzendadres en betaalmethode zijn vereist",
		"error.order.invalid_status_transition": "De bestelling kan niet naar die status worden gezet",
		"error.out_of_stock":                    "Onvoldoende voorraad",
		"error.invalid_pricing":                 "Ongeldige prijsinstellingen",
		"error.pricing_not_found":               "Prijsinstellingen niet gevonden",
		"error.invalid_payment_method":          "Niet-ondersteunde betaalmethode",
		"error.account_exists":                  "Er bestaat al een account met dit e-mailadres of deze gebruikersnaam",
		"error.account_not_found":               "Account niet gevonden",

		// Cart notices
		"cart.notice.added":        "{name} is toegevoegd aan je winkelwagen",
		"cart.notice.incremented":  "Aantal {name} verhoogd naar {quantity}",
		"cart.notice.updated":      "Aantal {name} gewijzigd naar {quantity}",
		"cart.notice.removed":      "{name} is verwijderd uit je winkelwagen",
		"cart.notice.cleared":      "Je winkelwagen is nu leeg",
		"cart.notice.merged":       "{quantity} product(en) uit je vorige winkelwagen toegevoegd",
		"cart.notice.out_of_stock": "Nog maar {available} van {name} beschikbaar",
		"cart.notice.unchanged":    "Je winkelwagen is niet gewijzigd",

		// Success messages
		"success.order_placed": "Je bestelling is geplaatst",
	},
}
