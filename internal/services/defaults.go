package services

import "encoding/json"

// DefaultContent is the bundled fixture served for sections that have never
// been edited. The public site falls back to the same shapes client-side,
// so the keys here must stay in sync with models.SectionKeys.
var DefaultContent = map[string]json.RawMessage{
	"hero": json.RawMessage(`{
		"title": "Helping Hands Organization",
		"subtitle": "Students serving the community, one campaign at a time",
		"ctaText": "Get Involved",
		"ctaLink": "/contact",
		"backgroundImage": ""
	}`),
	"about": json.RawMessage(`{
		"heading": "Who We Are",
		"body": "Helping Hands Organization is a student-run nonprofit supporting education, health, and relief campaigns.",
		"stats": [
			{"label": "Volunteers", "value": "200+"},
			{"label": "Campaigns", "value": "35"},
			{"label": "Funds Raised", "value": "12L+"}
		]
	}`),
	"campaigns": json.RawMessage(`{
		"heading": "Our Campaigns",
		"items": []
	}`),
	"announcements": json.RawMessage(`{
		"items": []
	}`),
	"gallery": json.RawMessage(`{
		"heading": "Gallery",
		"images": []
	}`),
	"help": json.RawMessage(`{
		"heading": "How You Can Help",
		"options": [
			{"title": "Donate", "description": "Every contribution funds a campaign."},
			{"title": "Volunteer", "description": "Join a drive near you."}
		]
	}`),
	"footer": json.RawMessage(`{
		"tagline": "Together we can make a difference.",
		"socials": []
	}`),
}
