package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/Juankcba/choapp-back/internal/utils"
	"github.com/google/uuid"
)

const (
	defaultSweepWindow           = 7 * 24 * time.Hour
	defaultSweepMinNotifications = 5
	defaultSweepSettle           = 10 * time.Minute
)

// FindNearbyCaregivers returns matchable caregivers whose own service radius
// covers the location, nearest first. Distances are rounded to 0.1 km.
func (uc *MatchUC) FindNearbyCaregivers(ctx context.Context, location *models.Location, serviceType models.ServiceType) ([]*models.NearbyCaregiver, error) {
	nearby := make([]*models.NearbyCaregiver, 0)
	if location == nil {
		return nearby, nil
	}

	caregivers, err := uc.matchRepo.ListMatchableCaregivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list caregivers: %w", err)
	}

	for _, caregiver := range caregivers {
		if !caregiver.IsMatchable() {
			continue
		}
		distance := utils.DistanceBetween(*location, *caregiver.Location)
		if distance > caregiver.RadiusKm() {
			continue
		}
		if !caregiver.Offers(serviceType) {
			continue
		}
		nearby = append(nearby, &models.NearbyCaregiver{
			Caregiver: caregiver,
			Distance:  utils.RoundKm(distance),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})

	logger.DebugCtx(ctx, "Directory lookup finished",
		logger.Float64("latitude", location.Latitude),
		logger.Float64("longitude", location.Longitude),
		logger.Int("scanned", len(caregivers)),
		logger.Int("found", len(nearby)))

	return nearby, nil
}

// NotifyNearbyCaregivers offers the service to every nearby caregiver and
// records one notification row per caregiver, whatever the delivery outcome.
func (uc *MatchUC) NotifyNearbyCaregivers(ctx context.Context, serviceID string) (*models.NotifyResult, error) {
	return uc.fanOut(ctx, serviceID, false)
}

// fanOut runs one matching round. With skipRecent, caregivers offered the
// service inside the re-notify window are left out.
func (uc *MatchUC) fanOut(ctx context.Context, serviceID string, skipRecent bool) (*models.NotifyResult, error) {
	service, err := uc.matchRepo.GetService(ctx, serviceID)
	if errors.Is(err, models.ErrNotFound) {
		logger.WarnCtx(ctx, "Service not found for fan-out", logger.ServiceID(serviceID))
		return &models.NotifyResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	if service.Location == nil {
		logger.WarnCtx(ctx, "Service has no location, skipping fan-out", logger.ServiceID(serviceID))
		return &models.NotifyResult{}, nil
	}

	nearby, err := uc.FindNearbyCaregivers(ctx, service.Location, service.ServiceType)
	if err != nil {
		return nil, err
	}
	if len(nearby) == 0 {
		logger.InfoCtx(ctx, "No nearby caregivers found", logger.ServiceID(serviceID))
		return &models.NotifyResult{}, nil
	}

	window := uc.cfg.Match.RenotifyWindow
	notified := 0
	for _, hit := range nearby {
		caregiverID := hit.Caregiver.ID

		if skipRecent && window > 0 {
			seen, err := uc.matchRepo.WasNotified(ctx, serviceID, caregiverID)
			if err != nil {
				logger.WarnCtx(ctx, "Re-notify window lookup failed",
					logger.ServiceID(serviceID), logger.CaregiverID(caregiverID), logger.Err(err))
			} else if seen {
				continue
			}
		}

		online := uc.matchGW.IsOnline(hit.Caregiver.UserID)
		notification := &models.ServiceNotification{
			ID:          uuid.New().String(),
			ServiceID:   serviceID,
			CaregiverID: caregiverID,
			Distance:    hit.Distance,
			Channel:     plannedChannel(online),
			Status:      models.NotificationPending,
			Version:     1,
			CreatedAt:   models.Now(),
		}
		// an offer without a row could never be answered
		if err := uc.matchRepo.CreateNotification(ctx, notification); err != nil {
			logger.ErrorCtx(ctx, "Failed to record notification, offer not sent",
				logger.ServiceID(serviceID), logger.CaregiverID(caregiverID), logger.Err(err))
			continue
		}
		notified++

		if window > 0 {
			if err := uc.matchRepo.MarkNotified(ctx, serviceID, caregiverID, window); err != nil {
				logger.WarnCtx(ctx, "Failed to mark caregiver as notified",
					logger.ServiceID(serviceID), logger.CaregiverID(caregiverID), logger.Err(err))
			}
		}

		channel := uc.deliverOffer(ctx, service, hit, online)
		if channel != notification.Channel {
			notification.Channel = channel
			if err := uc.matchRepo.UpdateNotificationChannel(ctx, notification.ID, channel); err != nil {
				logger.WarnCtx(ctx, "Failed to update notification channel",
					logger.ServiceID(serviceID), logger.CaregiverID(caregiverID), logger.Err(err))
			}
		}
	}

	uc.publish(ctx, constants.SubjectServiceNearby, "", serviceID, models.NotifyResult{Notified: notified})

	logger.InfoCtx(ctx, "Caregivers notified",
		logger.ServiceID(serviceID),
		logger.Int("notified", notified),
		logger.Bool("sweep", skipRecent))

	return &models.NotifyResult{Notified: notified}, nil
}

func plannedChannel(online bool) models.NotificationChannel {
	if online {
		return models.ChannelWebsocket
	}
	return models.ChannelEmail
}

// deliverOffer tells one caregiver about the service and returns the channel
// used. Online caregivers get a realtime event; when that fails or they are
// offline an email goes out.
func (uc *MatchUC) deliverOffer(ctx context.Context, service *models.Service, hit *models.NearbyCaregiver, online bool) models.NotificationChannel {
	caregiver := hit.Caregiver
	payload := models.ServiceNearbyPayload{
		ServiceID:     service.ID,
		ServiceType:   string(service.ServiceType),
		ServiceName:   service.ServiceType.DisplayName(),
		PatientName:   patientName(service),
		Distance:      hit.Distance,
		Area:          utils.Area(*service.Location, uc.cfg.Match.AreaPrecision),
		ScheduledDate: service.ScheduledDate,
		Duration:      service.Duration,
	}

	if online && uc.pushOnline(ctx, caregiver.UserID, constants.EventServiceNearby, payload) {
		return models.ChannelWebsocket
	}

	uc.mail(ctx, models.MailJob{
		Template: models.MailServiceNearby,
		To:       caregiver.Email,
		Name:     caregiver.Name,
		Data: map[string]string{
			"service_id":     service.ID,
			"service_type":   payload.ServiceName,
			"patient_name":   payload.PatientName,
			"distance":       fmt.Sprintf("%.1f", hit.Distance),
			"scheduled_date": models.FormatTime(service.ScheduledDate),
			"duration":       fmt.Sprintf("%d", service.Duration),
		},
	})

	if online {
		return models.ChannelBoth
	}
	return models.ChannelEmail
}

// RecheckPendingServices re-runs the fan-out for recent pending services that
// reached too few caregivers. Services younger than one sweep interval are
// left to their initial fan-out. A failing service does not stop the sweep.
func (uc *MatchUC) RecheckPendingServices(ctx context.Context) (*models.SweepResult, error) {
	settle := uc.cfg.Match.SweepInterval
	if settle <= 0 {
		settle = defaultSweepSettle
	}
	window := uc.cfg.Match.SweepWindow
	if window <= 0 {
		window = defaultSweepWindow
	}
	minNotifications := uc.cfg.Match.SweepMinNotifications
	if minNotifications <= 0 {
		minNotifications = defaultSweepMinNotifications
	}

	now := models.Now()
	services, err := uc.matchRepo.ListUnderNotifiedServices(ctx, now.Add(-window), now.Add(-settle), minNotifications)
	if err != nil {
		return nil, fmt.Errorf("failed to list under-notified services: %w", err)
	}

	result := &models.SweepResult{Checked: len(services)}
	for _, service := range services {
		if ctx.Err() != nil {
			break
		}
		res, err := uc.fanOut(ctx, service.ID, true)
		if err != nil {
			result.Failed++
			logger.ErrorCtx(ctx, "Re-matching failed for service",
				logger.ServiceID(service.ID), logger.Err(err))
			continue
		}
		result.Notified += res.Notified
	}

	logger.InfoCtx(ctx, "Re-matching sweep finished",
		logger.Int("checked", result.Checked),
		logger.Int("notified", result.Notified),
		logger.Int("failed", result.Failed))

	return result, nil
}
