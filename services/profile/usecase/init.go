package usecase

import (
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/services/profile"
)

// ProfileUC implements the profile use case interface
type ProfileUC struct {
	cfg         *models.Config
	profileRepo profile.ProfileRepo
	presenceGW  profile.PresenceGW
}

// NewProfileUC creates a new profile use case
func NewProfileUC(cfg *models.Config, profileRepo profile.ProfileRepo, presenceGW profile.PresenceGW) *ProfileUC {
	return &ProfileUC{
		cfg:         cfg,
		profileRepo: profileRepo,
		presenceGW:  presenceGW,
	}
}
