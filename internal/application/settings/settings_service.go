package settings

import (
	"context"

	"github.com/hjumpers/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// UpdateRequest carries a partial settings update
type UpdateRequest struct {
	BusinessName    *string `json:"business_name"`
	BusinessPhone   *string `json:"business_phone"`
	BusinessAddress *string `json:"business_address"`
	WhatsAppNumber  *string `json:"whatsapp_number"`
}

// Service reads and updates the storefront settings held in the document
type Service struct {
	store persistence.Store
	log   *zap.Logger
}

// NewService creates a settings Service
func NewService(store persistence.Store, log *zap.Logger) *Service {
	return &Service{
		store: store,
		log:   log.Named("settings"),
	}
}

// Get returns the stored settings
func (s *Service) Get(ctx context.Context) (*persistence.Settings, error) {
	var out persistence.Settings
	err := s.store.View(ctx, func(doc *persistence.Document) error {
		out = doc.Settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update merges the non-nil fields over the stored settings
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*persistence.Settings, error) {
	var out persistence.Settings
	err := s.store.Update(ctx, func(doc *persistence.Document) error {
		if req.BusinessName != nil {
			doc.Settings.BusinessName = *req.BusinessName
		}
		if req.BusinessPhone != nil {
			doc.Settings.BusinessPhone = *req.BusinessPhone
		}
		if req.BusinessAddress != nil {
			doc.Settings.BusinessAddress = *req.BusinessAddress
		}
		if req.WhatsAppNumber != nil {
			doc.Settings.WhatsAppNumber = *req.WhatsAppNumber
		}
		out = doc.Settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Settings updated")
	return &out, nil
}
