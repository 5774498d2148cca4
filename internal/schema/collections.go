package schema

// The declared schemas for the site's three collections. These replace the
// duck-typed front matter the layouts used to reach into: every document is
// checked against its collection's schema before anything renders it.

// Blog is the schema for blog post front matter.
func Blog() *Schema {
	return &Schema{
		Collection: "blog",
		Fields: []Field{
			{Name: "title", Kind: String, Required: true},
			{Name: "description", Kind: String, Required: true},
			{Name: "date", Kind: Date, Required: true},
			{Name: "image", Kind: URL},
			{Name: "minRead", Kind: Int, Default: 1, Min: 1, Max: 600},
			{Name: "author", Kind: Object, Fields: []Field{
				{Name: "name", Kind: String, Required: true},
				{Name: "avatar", Kind: Object, Fields: []Field{
					{Name: "src", Kind: URL, Required: true},
					{Name: "alt", Kind: String},
				}},
			}},
		},
	}
}

// Projects is the schema for project entry documents.
func Projects() *Schema {
	return &Schema{
		Collection: "projects",
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
			{Name: "description", Kind: String, Required: true},
			{Name: "image", Kind: URL},
			{Name: "url", Kind: URL},
			{Name: "repo", Kind: URL},
			{Name: "year", Kind: Int},
			{Name: "featured", Kind: Bool},
		},
	}
}

// Index is the schema for the homepage document. Hero and about are required;
// the remaining sections render only when present.
func Index() *Schema {
	return &Schema{
		Collection: "index",
		Fields: []Field{
			{Name: "hero", Kind: Object, Required: true, Fields: []Field{
				{Name: "title", Kind: String, Required: true},
				{Name: "description", Kind: Text},
				{Name: "links", Kind: List, Fields: []Field{
					{Name: "label", Kind: String, Required: true},
					{Name: "to", Kind: URL, Required: true},
				}},
			}},
			{Name: "about", Kind: Object, Required: true, Fields: []Field{
				{Name: "title", Kind: String},
				{Name: "description", Kind: Text, Required: true},
			}},
			{Name: "experience", Kind: Object, Fields: []Field{
				{Name: "title", Kind: String},
				{Name: "items", Kind: List, Fields: []Field{
					{Name: "position", Kind: String, Required: true},
					{Name: "company", Kind: String, Required: true},
					{Name: "period", Kind: String},
					{Name: "description", Kind: Text},
				}},
			}},
			{Name: "testimonials", Kind: Object, Fields: []Field{
				{Name: "title", Kind: String},
				{Name: "items", Kind: List, Fields: []Field{
					{Name: "name", Kind: String, Required: true},
					{Name: "role", Kind: String},
					{Name: "quote", Kind: Text, Required: true},
					{Name: "rating", Kind: Int, Min: 1, Max: 5},
				}},
			}},
			{Name: "faq", Kind: Object, Fields: []Field{
				{Name: "title", Kind: String},
				{Name: "items", Kind: List, Fields: []Field{
					{Name: "label", Kind: String, Required: true},
					{Name: "content", Kind: Text, Required: true},
				}},
			}},
		},
	}
}
