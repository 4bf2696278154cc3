package region

import "strings"

// TransformLink rewrites a persisted link value based on the override key it
// was stored under, before the value is used as an href. Rules match on key
// substrings: WhatsApp numbers become click-to-chat URLs and email-like keys
// gain a mailto scheme unless one is already present.
func TransformLink(key, value string) string {
	if strings.Contains(key, "links.whatsappNumber") {
		return "https://wa.me/" + value
	}
	if strings.Contains(key, "email") && !strings.HasPrefix(value, "mailto:") {
		return "mailto:" + value
	}
	return value
}
