package usecase

import (
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/pkg/tasks"
	"github.com/Juankcba/choapp-back/services/match"
)

// MatchUC implements the match use case interface
type MatchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
	matchGW   match.MatchGW
	paymentGW match.PaymentGW
	tasks     tasks.Dispatcher
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	cfg *models.Config,
	matchRepo match.MatchRepo,
	matchGW match.MatchGW,
	paymentGW match.PaymentGW,
	dispatcher tasks.Dispatcher,
) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
		matchGW:   matchGW,
		paymentGW: paymentGW,
		tasks:     dispatcher,
	}
}
