package models

// Post represents a blog entry stored in the blogs or myblogs collection.
// Only a handful of fields are known to the API; authors may attach any others.
type Post Document

// Well-known post fields
const (
	PostFieldCategory         = "category"
	PostFieldTitle            = "title"
	PostFieldDescription      = "description"
	PostFieldShortDescription = "shortDescription"
	PostFieldLongDescription  = "longDescription"
)

// PostTextFields are the fields covered by the text index that backs searchText.
var PostTextFields = []string{
	PostFieldTitle,
	PostFieldDescription,
	PostFieldShortDescription,
	PostFieldLongDescription,
}
