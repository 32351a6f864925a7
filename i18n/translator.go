package i18n

// Translator retrieves localized messages for rule tags. data provides
// optional metadata to embed in the message (for example, "min" or
// "expected").
type Translator interface {
	Message(rule string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(rule string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch rule {
		case "required":
			return "必須プロパティが不足しています"
		case "type":
			return "型が不正です"
		case "minLength":
			return "短すぎます"
		case "maxLength":
			return "長すぎます"
		case "minimum":
			return "小さすぎます"
		case "maximum":
			return "大きすぎます"
		case "pattern":
			return "パターンに一致しません"
		case "format":
			return "形式が不正です"
		case "header":
			return "ヘッダの値が一致しません"
		}
	default: // "en"
		switch rule {
		case "required":
			return "required property missing"
		case "type":
			if data != nil && data["expected"] != "" {
				return "expected " + data["expected"]
			}
			return "invalid type"
		case "minLength":
			if data != nil && data["min"] != "" {
				return "must be at least " + data["min"] + " characters"
			}
			return "too short"
		case "maxLength":
			if data != nil && data["max"] != "" {
				return "must be at most " + data["max"] + " characters"
			}
			return "too long"
		case "minimum":
			if data != nil && data["min"] != "" {
				return "must be at least " + data["min"]
			}
			return "too small"
		case "maximum":
			if data != nil && data["max"] != "" {
				return "must be at most " + data["max"]
			}
			return "too big"
		case "pattern":
			return "does not match the required pattern"
		case "format":
			if data != nil && data["format"] != "" {
				return "not a valid " + data["format"]
			}
			return "invalid format"
		case "header":
			return "unexpected header value"
		}
	}
	return rule
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given rule using the current Translator.
func T(rule string, data map[string]string) string { return currentTranslator.Message(rule, data) }
