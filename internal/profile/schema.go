package profile

// JSON Schema for the snapshot file. Scores are not range-restricted
// here: the loader clamps them, and the progression engine rejects a
// bad cap at award time.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["level", "currentXp", "maxXp", "skills"],
  "properties": {
    "level": {"type": "integer", "minimum": 1},
    "currentXp": {"type": "integer", "minimum": 0},
    "maxXp": {"type": "integer", "minimum": 1},
    "streak": {"type": "integer", "minimum": 0},
    "skills": {
      "type": "object",
      "required": ["speaking", "reading", "grammar", "listening", "writing"],
      "properties": {
        "speaking": {"type": "number"},
        "reading": {"type": "number"},
        "grammar": {"type": "number"},
        "listening": {"type": "number"},
        "writing": {"type": "number"}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`
