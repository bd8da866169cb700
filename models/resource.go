package models

// Response shapes for the tool endpoints. Two explicit variants exist
// because creation responses order/select fields differently from detail
// responses; the handler picks the variant, the shapes never inspect the
// request.

type ToolResource struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type ToolCreatedResource struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ID          uint     `json:"id"`
}

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
	PerPage      int   `json:"per_page"`
	Total        int64 `json:"total"`
	LastPage     int   `json:"last_page"`
}

type ToolCollection struct {
	Data       []ToolResource `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

func tagNames(tool *Tool) []string {
	names := make([]string, len(tool.Tags))
	for i, tag := range tool.Tags {
		names[i] = tag.Name
	}
	return names
}

func NewToolResource(tool *Tool) ToolResource {
	return ToolResource{
		ID:          tool.ID,
		Title:       tool.Title,
		Link:        tool.Link,
		Description: tool.Description,
		Tags:        tagNames(tool),
	}
}

func NewToolCreatedResource(tool *Tool) ToolCreatedResource {
	return ToolCreatedResource{
		Title:       tool.Title,
		Link:        tool.Link,
		Description: tool.Description,
		Tags:        tagNames(tool),
		ID:          tool.ID,
	}
}

func NewToolCreatedResources(tools []Tool) []ToolCreatedResource {
	resources := make([]ToolCreatedResource, len(tools))
	for i := range tools {
		resources[i] = NewToolCreatedResource(&tools[i])
	}
	return resources
}

// NewPagination derives the metadata for an offset-based page. Total and
// last page reflect the filtered count, not the raw table size.
func NewPagination(page, perPage int, total int64) Pagination {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	p := Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}

	if page > 1 {
		prev := page - 1
		p.PreviousPage = &prev
	}
	if page < lastPage {
		next := page + 1
		p.NextPage = &next
	}

	return p
}

func NewToolCollection(tools []Tool, pagination Pagination) ToolCollection {
	resources := make([]ToolResource, len(tools))
	for i := range tools {
		resources[i] = NewToolResource(&tools[i])
	}
	return ToolCollection{Data: resources, Pagination: pagination}
}
