package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type InquiryService struct {
	inquiries repositories.InquiryRepository
	props     *PropertyService
	notifier  DealerNotifier
	notify    bool
}

// NewInquiryService accepts a nil notifier; notify mirrors the
// notify_dealer_on_inquiry flag.
func NewInquiryService(
	inquiries repositories.InquiryRepository,
	props *PropertyService,
	notifier DealerNotifier,
	notify bool,
) *InquiryService {
	return &InquiryService{inquiries: inquiries, props: props, notifier: notifier, notify: notify}
}

// Create records an inquiry against an active listing, bumps its counter
// and tells the dealer. Counter and notification failures are logged only.
func (s *InquiryService) Create(ctx context.Context, req dtos.CreateInquiryRequest) (*models.Inquiry, error) {
	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, utils.BadRequest("Invalid property id", err)
	}
	prop, err := s.props.Get(ctx, nil, propertyID)
	if err != nil {
		return nil, err
	}

	inq := &models.Inquiry{
		ID:         uuid.New(),
		PropertyID: propertyID,
		Name:       strings.TrimSpace(req.Name),
		Email:      utils.NilIfBlank(req.Email),
		Phone:      utils.NilIfBlank(req.Phone),
		Message:    utils.NilIfBlank(req.Message),
	}
	if err := s.inquiries.Create(ctx, inq); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to save inquiry", err)
	}
	if err := s.props.repo.IncrementInquiries(ctx, propertyID); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to bump inquiry count for property %s", propertyID)
	}

	s.notifyDealer(ctx, prop, inq)
	return inq, nil
}

func (s *InquiryService) ListByDealer(ctx context.Context, actor Actor) ([]*models.Inquiry, error) {
	dealer, err := s.props.dealerProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	out, err := s.inquiries.ListByDealer(ctx, dealer.ID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list inquiries", err)
	}
	return out, nil
}

func (s *InquiryService) notifyDealer(ctx context.Context, prop *models.Property, inq *models.Inquiry) {
	if !s.notify || s.notifier == nil {
		return
	}
	dealer, err := s.props.profiles.GetByID(ctx, prop.DealerID)
	if err != nil || dealer == nil {
		utils.Logger.WithError(err).Warnf("No dealer profile to notify for property %s", prop.ID)
		return
	}
	if err := s.notifier.NotifyInquiry(ctx, dealer, prop, inq); err != nil {
		utils.Logger.WithError(err).Warnf("Dealer notification incomplete for inquiry %s", inq.ID)
	}
}
