package services

import (
	"strings"

	"skillswap_backend/internal/email"
	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SwapService interface {
	// CreateSwap inserts a pending request. Both skill strings must be
	// non-empty and the provider must be a different, existing user.
	CreateSwap(db *gorm.DB, requesterID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error)

	GetSwap(db *gorm.DB, swapID, viewerID string, viewerRole models.UserRole) (*dto.SwapResponse, error)
	ListMySwaps(db *gorm.DB, userID string) (*dto.SwapListResponse, error)

	// SetStatus applies one step of the workflow. Transitions are
	// validated server-side; a completed or rejected swap never moves
	// again.
	SetStatus(db *gorm.DB, swapID, callerID string, status models.SwapStatus) (*dto.SwapResponse, error)

	// AttachFeedback stores feedback text and a 1-5 rating on the swap,
	// once, by a participant, after the swap was accepted. It also
	// records a Rating for the counterparty.
	AttachFeedback(db *gorm.DB, swapID, callerID string, req *dto.AttachFeedbackRequest) error

	// DeleteSwap removes a request; only the requester may delete, and
	// only while it is pending.
	DeleteSwap(db *gorm.DB, swapID, callerID string) error
}

type swapService struct {
	swapRepo    repositories.SwapRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	ratingRepo  repositories.RatingRepository
	emailSvc    email.Provider
}

func NewSwapService(
	swapRepo repositories.SwapRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	ratingRepo repositories.RatingRepository,
	emailSvc email.Provider,
) SwapService {
	return &swapService{
		swapRepo:    swapRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		ratingRepo:  ratingRepo,
		emailSvc:    emailSvc,
	}
}

func (s *swapService) CreateSwap(db *gorm.DB, requesterID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error) {
	skillOffered := strings.TrimSpace(req.SkillOffered)
	skillWanted := strings.TrimSpace(req.SkillWanted)
	if skillOffered == "" || skillWanted == "" {
		return nil, apperrors.ErrInvalidOperation("swap", "Both offered and wanted skills are required")
	}

	if req.ProviderID == requesterID {
		return nil, apperrors.ErrInvalidOperation("swap", "Cannot request a swap with yourself")
	}

	provider, err := s.userRepo.FindByID(db, req.ProviderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if provider.Status != models.UserStatusActive {
		return nil, apperrors.ErrInvalidOperation("swap", "This user cannot receive swap requests")
	}

	swap := &models.SwapRequest{
		RequesterID:  requesterID,
		ProviderID:   req.ProviderID,
		SkillOffered: skillOffered,
		SkillWanted:  skillWanted,
		Status:       models.SwapStatusPending,
		Message:      strings.TrimSpace(req.Message),
	}

	if err := s.swapRepo.Create(db, swap); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyRequested(db, swap, provider)

	created, err := s.swapRepo.FindByID(db, swap.ID)
	if err != nil {
		return buildSwapResponse(swap), nil
	}
	return buildSwapResponse(created), nil
}

func (s *swapService) GetSwap(db *gorm.DB, swapID, viewerID string, viewerRole models.UserRole) (*dto.SwapResponse, error) {
	swap, err := s.findSwap(db, swapID)
	if err != nil {
		return nil, err
	}

	if !swap.Involves(viewerID) && viewerRole != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("Not a participant of this swap")
	}

	return buildSwapResponse(swap), nil
}

func (s *swapService) ListMySwaps(db *gorm.DB, userID string) (*dto.SwapListResponse, error) {
	sent, err := s.swapRepo.FindSentBy(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	received, err := s.swapRepo.FindReceivedBy(db, userID, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.SwapListResponse{
		Sent:     []*dto.SwapResponse{},
		Received: []*dto.SwapResponse{},
	}
	for i := range sent {
		resp.Sent = append(resp.Sent, buildSwapResponse(&sent[i]))
	}
	for i := range received {
		resp.Received = append(resp.Received, buildSwapResponse(&received[i]))
	}
	return resp, nil
}

func (s *swapService) SetStatus(db *gorm.DB, swapID, callerID string, status models.SwapStatus) (*dto.SwapResponse, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus("swap", "Unknown swap status")
	}

	swap, err := s.findSwap(db, swapID)
	if err != nil {
		return nil, err
	}

	if !swap.Involves(callerID) {
		return nil, apperrors.NewForbiddenError("Not a participant of this swap")
	}

	if !models.CanTransition(swap.Status, status) {
		return nil, apperrors.ErrInvalidStatus("swap",
			"Cannot move swap from '"+string(swap.Status)+"' to '"+string(status)+"'")
	}

	// Accept/reject is the provider's decision; completion may be
	// reported by either party.
	if (status == models.SwapStatusAccepted || status == models.SwapStatusRejected) && callerID != swap.ProviderID {
		return nil, apperrors.NewForbiddenError("Only the provider can accept or reject a request")
	}

	if err := s.swapRepo.UpdateStatus(db, swapID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	swap.Status = status

	if status == models.SwapStatusAccepted || status == models.SwapStatusRejected {
		s.notifyDecided(db, swap, status == models.SwapStatusAccepted)
	}

	return buildSwapResponse(swap), nil
}

func (s *swapService) AttachFeedback(db *gorm.DB, swapID, callerID string, req *dto.AttachFeedbackRequest) error {
	swap, err := s.findSwap(db, swapID)
	if err != nil {
		return err
	}

	if !swap.Involves(callerID) {
		return apperrors.NewForbiddenError("Not a participant of this swap")
	}

	if swap.Status != models.SwapStatusAccepted && swap.Status != models.SwapStatusCompleted {
		return apperrors.ErrInvalidStatus("swap", "Feedback is only allowed after a swap was accepted")
	}

	if swap.HasFeedback() {
		return apperrors.ErrConflict(nil, "swap", "Feedback was already attached to this swap")
	}

	counterparty := swap.Counterparty(callerID)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.swapRepo.AttachFeedback(tx, swapID, callerID, strings.TrimSpace(req.Comment), req.Rating); err != nil {
			return apperrors.InternalError(err)
		}

		rating := &models.Rating{
			RaterID:       callerID,
			RatedID:       counterparty,
			SwapRequestID: swapID,
			Score:         req.Rating,
			Comment:       strings.TrimSpace(req.Comment),
		}
		if err := s.ratingRepo.Create(tx, rating); err != nil {
			if apperrors.Is(err, repositories.ErrRatingAlreadyExists) {
				return apperrors.ErrConflict(err, "rating", "You already rated this swap")
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
}

func (s *swapService) DeleteSwap(db *gorm.DB, swapID, callerID string) error {
	swap, err := s.findSwap(db, swapID)
	if err != nil {
		return err
	}

	if swap.RequesterID != callerID {
		return apperrors.NewForbiddenError("Only the requester can delete a swap request")
	}

	if swap.Status != models.SwapStatusPending {
		return apperrors.ErrInvalidStatus("swap", "Only pending requests can be deleted")
	}

	if err := s.swapRepo.Delete(db, swapID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *swapService) findSwap(db *gorm.DB, swapID string) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.FindByID(db, swapID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSwapNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return swap, nil
}

func (s *swapService) notifyRequested(db *gorm.DB, swap *models.SwapRequest, provider *models.User) {
	requesterProfile, err := s.profileRepo.FindByUserID(db, swap.RequesterID)
	if err != nil {
		return
	}
	go func(to, name, offered, wanted string) {
		if err := s.emailSvc.SendSwapRequested(to, name, offered, wanted); err != nil {
			logger.Warn("failed to send swap request email", "error", err)
		}
	}(provider.Email, requesterProfile.Name, swap.SkillOffered, swap.SkillWanted)
}

func (s *swapService) notifyDecided(db *gorm.DB, swap *models.SwapRequest, accepted bool) {
	requester, err := s.userRepo.FindByID(db, swap.RequesterID)
	if err != nil {
		return
	}
	providerProfile, err := s.profileRepo.FindByUserID(db, swap.ProviderID)
	if err != nil {
		return
	}
	go func(to, name, wanted string) {
		if err := s.emailSvc.SendSwapDecided(to, name, wanted, accepted); err != nil {
			logger.Warn("failed to send swap decision email", "error", err)
		}
	}(requester.Email, providerProfile.Name, swap.SkillWanted)
}

func buildSwapResponse(swap *models.SwapRequest) *dto.SwapResponse {
	resp := &dto.SwapResponse{
		ID:           swap.ID,
		RequesterID:  swap.RequesterID,
		ProviderID:   swap.ProviderID,
		SkillOffered: swap.SkillOffered,
		SkillWanted:  swap.SkillWanted,
		Status:       string(swap.Status),
		Message:      swap.Message,
		Feedback:     swap.Feedback,
		Rating:       swap.FeedbackRating,
		CreatedAt:    swap.CreatedAt,
		UpdatedAt:    swap.UpdatedAt,
	}
	if swap.Requester != nil && swap.Requester.Profile != nil {
		resp.Requester = participantInfo(swap.RequesterID, swap.Requester.Profile)
	}
	if swap.Provider != nil && swap.Provider.Profile != nil {
		resp.Provider = participantInfo(swap.ProviderID, swap.Provider.Profile)
	}
	return resp
}

func participantInfo(userID string, profile *models.Profile) *dto.ParticipantInfo {
	return &dto.ParticipantInfo{
		UserID:    userID,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
	}
}
