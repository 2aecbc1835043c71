package dto

type SearchCriteria struct {
	Query string `form:"q" validate:"omitempty,max=100"`
	Skill string `form:"skill" validate:"omitempty,max=60"`
}

type SearchResponse struct {
	Profiles []*ProfileResponse `json:"profiles"`
	Total    int                `json:"total"`
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}
