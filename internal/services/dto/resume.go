package dto

// CreateResumeRequest - создание резюме студентом
type CreateResumeRequest struct {
	StudentID    string   `json:"student_id" validate:"required,uuid"`
	Title        string   `json:"title" validate:"required"`
	Education    string   `json:"education,omitempty"`
	Experience   string   `json:"experience,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Achievements string   `json:"achievements,omitempty"`
	Content      string   `json:"content,omitempty"`
}

// UpdateResumeRequest - частичное обновление резюме
type UpdateResumeRequest struct {
	Title        *string   `json:"title,omitempty"`
	Education    *string   `json:"education,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
	Languages    *[]string `json:"languages,omitempty"`
	Achievements *string   `json:"achievements,omitempty"`
	Content      *string   `json:"content,omitempty"`
}

func (r *UpdateResumeRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Education != nil {
		fields["education"] = *r.Education
	}
	if r.Experience != nil {
		fields["experience"] = *r.Experience
	}
	if r.Skills != nil {
		fields["skills"] = ToJSONSlice(*r.Skills)
	}
	if r.Languages != nil {
		fields["languages"] = ToJSONSlice(*r.Languages)
	}
	if r.Achievements != nil {
		fields["achievements"] = *r.Achievements
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	return fields
}
