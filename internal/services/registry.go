package services

import "skillswap_backend/internal/email"

// ServiceContainer aggregates every service for wiring in app and tests.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	SkillService   SkillService
	SwapService    SwapService
	RatingService  RatingService
	SearchService  SearchService
	AdminService   AdminService
	UploadService  UploadService
	EmailService   email.Provider
}
