package services

import (
	"context"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"onboardly/pkg/leadform"
	"onboardly/pkg/models"
	"onboardly/pkg/store"
	"onboardly/pkg/utils"
)

// LeadSubmissionService defines the interface for handling incoming leads
type LeadSubmissionService interface {
	CreateLead(ctx context.Context, data models.LeadForm) (*models.Lead, error)
	ListLeads(ctx context.Context) ([]models.Lead, error)
}

type leadSubmissionServiceImpl struct {
	leads  store.LeadStore
	policy *bluemonday.Policy
	logger *zap.Logger
}

// NewLeadSubmissionService creates a new submission service
func NewLeadSubmissionService(leads store.LeadStore, logger *zap.Logger) LeadSubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &leadSubmissionServiceImpl{
		leads:  leads,
		policy: bluemonday.StrictPolicy(),
		logger: logger,
	}
}

// CreateLead sanitizes, validates and stores a lead.
// Invalid input is returned as *leadform.ValidationError.
func (s *leadSubmissionServiceImpl) CreateLead(ctx context.Context, data models.LeadForm) (*models.Lead, error) {
	// Strip markup before validating
	clean := models.LeadForm{
		Name:  s.sanitize(data.Name),
		Email: s.sanitize(data.Email),
		Phone: s.sanitize(data.Phone),
	}

	// Apply the same rules as the landing page form
	if err := leadform.Validate(clean); err != nil {
		return nil, err
	}

	// Hash the phone number for logging
	phoneHash := utils.HashString(clean.Phone)
	s.logger.Info("processing lead",
		zap.String("name", clean.Name),
		zap.String("email", utils.MaskEmail(clean.Email)),
		zap.String("phone_hash", phoneHash),
	)

	// Store the lead
	lead := &models.Lead{
		Name:  clean.Name,
		Email: clean.Email,
		Phone: clean.Phone,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		s.logger.Error("error storing lead", zap.String("phone_hash", phoneHash), zap.Error(err))
		return nil, err
	}

	s.logger.Info("lead stored", zap.Uint("id", lead.ID), zap.String("phone_hash", phoneHash))
	return lead, nil
}

func (s *leadSubmissionServiceImpl) ListLeads(ctx context.Context) ([]models.Lead, error) {
	return s.leads.List(ctx)
}

// sanitize strips markup and surrounding whitespace.
// The policy escapes entities, so they are unescaped again to keep names like O'Brien intact.
func (s *leadSubmissionServiceImpl) sanitize(value string) string {
	return leadform.Trim(html.UnescapeString(s.policy.Sanitize(value)))
}
