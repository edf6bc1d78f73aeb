package models

// Document is a schema-less record as it is stored in a collection.
type Document map[string]any

// FieldID is the key under which every collection keeps the store-generated identifier.
const FieldID = "_id"

// Without returns a shallow copy of d minus the given keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
