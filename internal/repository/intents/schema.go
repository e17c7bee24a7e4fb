package intents

// templatesSchema validates unit_converter.json and wikipedia.json.
const templatesSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {"type": "string", "minLength": 1}
}`

// entriesSchema validates support.json, main_chat.json and domain_chat.json.
const entriesSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["questions", "answers"],
		"properties": {
			"questions": {"type": "array", "minItems": 1, "items": {"type": "string"}},
			"answers": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}}
		}
	}
}`

// messagesSchema validates welcome.json and fallback.json.
const messagesSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {"type": "string", "minLength": 1}
}`
