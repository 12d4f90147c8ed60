package chatbotService

import (
	"regexp"
	"strings"
	"unicode"

	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/internal/entity"
)

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// renderTemplate substitutes every {placeholder} from the company profile.
// The placeholder set is closed; anything else is a template bug and returns
// UnknownPlaceholderError instead of leaking braces to the user.
func renderTemplate(template string, profile *entity.CompanyProfile) (string, error) {
	var renderErr error

	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if renderErr != nil {
			return match
		}
		key := strings.Trim(match, "{}")
		value, ok := placeholderValue(key, profile)
		if !ok {
			renderErr = &chatbot.UnknownPlaceholderError{Placeholder: key}
			return match
		}
		return value
	})

	if renderErr != nil {
		return "", renderErr
	}
	return rendered, nil
}

func placeholderValue(key string, profile *entity.CompanyProfile) (string, bool) {
	switch key {
	case "company_name":
		return profile.Name, true
	case "industry":
		return profile.Industry, true
	case "mission":
		return profile.Mission, true
	case "products_list":
		return strings.Join(profile.Products, ", "), true
	case "services_list":
		return strings.Join(profile.Services, ", "), true
	case "contact_info":
		return profile.ContactInfo, true
	case "phone", "support_phone":
		return profile.Phone, true
	case "address":
		return profile.Address, true
	case "website":
		return profile.Website, true
	case "about":
		return profile.About, true
	default:
		return "", false
	}
}

// personalize applies the name prefix and interests trailer from session
// state. The name prefix fires with probability 0.7 and lowercases the first
// letter of the original response; it is skipped when the response already
// leads with the name.
func (s *chatbotService) personalize(response string, sess *entity.ChatSession) string {
	if sess.UserName != "" && s.randFloat() < 0.7 && !strings.HasPrefix(response, sess.UserName) {
		response = sess.UserName + ", " + lowerFirst(response)
	}

	if len(sess.Interests) > 0 {
		response += "\n\nBased on your interests in " + strings.Join(sess.Interests, ", ") + ", how can I assist you further?"
	}

	return response
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
