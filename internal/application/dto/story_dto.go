package dto

// StoryForm artisan story submission.
type StoryForm struct {
	Title   string `form:"title" validate:"required,max=255"`
	Content string `form:"content" validate:"required"`
}
