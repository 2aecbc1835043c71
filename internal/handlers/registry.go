package handlers

// AppHandlers holds every handler for route registration.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	SkillHandler   *SkillHandler
	SwapHandler    *SwapHandler
	RatingHandler  *RatingHandler
	SearchHandler  *SearchHandler
	AdminHandler   *AdminHandler
	UploadHandler  *UploadHandler
}
