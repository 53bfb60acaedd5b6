package http

// importRequestSchema checks the shape of a JSON import. The type value itself
// is checked by the usecase so unknown types get a specific message.
const importRequestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["type", "data"],
  "properties": {
    "type": {"type": "string", "minLength": 1},
    "data": {
      "type": "array",
      "items": {"type": "object"}
    },
    "options": {
      "type": "object",
      "properties": {
        "skipErrors": {"type": "boolean"},
        "updateExisting": {"type": "boolean"}
      }
    }
  }
}`
