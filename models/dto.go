package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateToolRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"required"`
	Link        string   `json:"link" binding:"required,url"`
	Tags        []string `json:"tags" binding:"omitempty,unique,dive,required"`
}

// UpdateToolRequest covers both replace (PUT) and merge (PATCH) semantics.
// Nil pointers mean "leave untouched"; the handler fills every field for a
// replace. A nil Tags slice leaves existing associations alone, an empty
// non-nil slice clears them.
type UpdateToolRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	Link        *string   `json:"link" binding:"omitempty,url"`
	Tags        *[]string `json:"tags" binding:"omitempty,unique,dive,required"`
}

type BulkCreateToolRequest struct {
	Tools []CreateToolRequest `json:"tools" binding:"required,min=1,dive"`
}

type ToolListParams struct {
	Tag   string `form:"tag"`
	Page  int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int    `form:"limit,default=10" binding:"omitempty,min=1"`
	// UserID is set by the service when listing is owner-scoped, never
	// bound from the request.
	UserID uint `form:"-"`
}
