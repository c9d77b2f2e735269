package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// normalize converts driver values into plain Go values so documents encode
// to JSON the same way whichever Collection produced them.
func normalize(v any) any {
	switch val := v.(type) {
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = normalize(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalize(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalize(e)
		}
		return m
	case Document:
		return map[string]any(normalizeDocument(val))
	case bson.A:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = normalize(e)
		}
		return a
	case []any:
		a := make([]any, len(val))
		for i, e := range val {
			a[i] = normalize(e)
		}
		return a
	case bson.ObjectID:
		return val.Hex()
	case bson.DateTime:
		return val.Time().UTC().Format(time.RFC3339Nano)
	case bson.Decimal128:
		return val.String()
	default:
		return v
	}
}

func normalizeDocument(doc map[string]any) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = normalize(v)
	}
	return out
}
