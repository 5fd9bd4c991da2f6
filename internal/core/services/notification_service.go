package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/utils/dates"
)

// newMerchantWindow is how long after onboarding a merchant still produces a
// new-merchant alert.
const newMerchantWindow = 24 * time.Hour

// notificationService derives the dashboard notification list from merchant,
// balance and conversation state. Nothing is persisted: the list is rebuilt on
// every fetch, and read flags are tracked in memory keyed by the deterministic
// notification ID, so a flag set on one fetch still applies to the equivalent
// entry of the next one.
type notificationService struct {
	BaseService
	merchantRepo     portsrepo.MerchantRepositoryFacade
	conversationRepo portsrepo.ConversationRepositoryFacade
	settingsRepo     portsrepo.SettingsRepositoryFacade
	balances         portssvc.BalanceReaderSvc
	now              func() time.Time

	mu          sync.Mutex
	readIDs     map[string]struct{}
	lastDerived map[string]struct{}
}

// NotificationOption is a functional option for the notification service
type NotificationOption func(*notificationService)

// WithNotificationClock overrides the clock, used by tests.
func WithNotificationClock(now func() time.Time) NotificationOption {
	return func(s *notificationService) {
		s.now = now
	}
}

// NewNotificationService creates a new notification service.
func NewNotificationService(
	merchantRepo portsrepo.MerchantRepositoryFacade,
	conversationRepo portsrepo.ConversationRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	balances portssvc.BalanceReaderSvc,
	options ...NotificationOption,
) portssvc.NotificationSvcFacade {
	svc := &notificationService{
		merchantRepo:     merchantRepo,
		conversationRepo: conversationRepo,
		settingsRepo:     settingsRepo,
		balances:         balances,
		now:              time.Now,
		readIDs:          make(map[string]struct{}),
		lastDerived:      make(map[string]struct{}),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// ListNotifications rebuilds the notification list. Each toggle in the
// notification settings gates its own alert class independently. The rules for
// suspended and payment-due alerts are evaluated independently as well: a
// merchant whose days since payment lands exactly on a warning threshold while
// already suspended produces both entries.
func (s *notificationService) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	toggles, err := s.settingsRepo.GetNotificationSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification settings: %w", err)
	}
	financial, err := s.settingsRepo.GetFinancialSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load financial settings: %w", err)
	}
	merchants, err := s.merchantRepo.ListMerchants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchants for notifications: %w", err)
	}

	now := s.now()
	today := dates.StartOfDay(now)
	var notifications []domain.Notification

	if toggles.NewMerchantAlerts {
		for i := range merchants {
			m := &merchants[i]
			if now.Sub(m.CreatedAt) <= newMerchantWindow && !now.Before(m.CreatedAt) {
				notifications = append(notifications, domain.Notification{
					ID:         domain.NotificationID(domain.NotifyNewMerchant, m.MerchantID, dates.StartOfDay(m.CreatedAt)),
					Kind:       domain.NotifyNewMerchant,
					Title:      "New merchant registered",
					Body:       fmt.Sprintf("%s joined the platform", m.Name),
					MerchantID: m.MerchantID,
					CreatedAt:  m.CreatedAt,
				})
			}
		}
	}

	if toggles.PaymentAlerts {
		thresholds := financial.WarningThresholds()
		for i := range merchants {
			m := &merchants[i]
			if m.IsDeletionPending() {
				continue
			}
			balance, err := s.balances.GetTipBalance(ctx, m.MerchantID)
			if err != nil {
				return nil, err
			}
			if balance.Status == domain.StatusSuspended {
				notifications = append(notifications, domain.Notification{
					ID:         domain.NotificationID(domain.NotifySuspended, m.MerchantID, today),
					Kind:       domain.NotifySuspended,
					Title:      "Merchant suspended",
					Body:       fmt.Sprintf("%s was suspended after %d days without payment", m.Name, balance.DaysSincePayment),
					MerchantID: m.MerchantID,
					CreatedAt:  now,
				})
			}
			for _, threshold := range thresholds {
				if balance.DaysSincePayment == threshold && balance.CurrentBalance.IsPositive() {
					notifications = append(notifications, domain.Notification{
						ID:         domain.NotificationID(domain.NotifyPaymentDue, m.MerchantID, today),
						Kind:       domain.NotifyPaymentDue,
						Title:      "Tip payment due",
						Body:       fmt.Sprintf("%s owes %s after %d days", m.Name, balance.CurrentBalance.String(), balance.DaysSincePayment),
						MerchantID: m.MerchantID,
						CreatedAt:  now,
					})
					break
				}
			}
		}
	}

	if toggles.MessageAlerts {
		conversations, err := s.conversationRepo.ListConversations(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load conversations for notifications: %w", err)
		}
		for i := range conversations {
			c := &conversations[i]
			if c.UnreadCount > 0 {
				notifications = append(notifications, domain.Notification{
					ID:             domain.NotificationID(domain.NotifyUnreadMessages, c.ConversationID, today),
					Kind:           domain.NotifyUnreadMessages,
					Title:          "Unread messages",
					Body:           fmt.Sprintf("%d unread messages in %q", c.UnreadCount, c.Subject),
					MerchantID:     c.MerchantID,
					ConversationID: c.ConversationID,
					CreatedAt:      c.LastMessageAt,
				})
			}
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		if notifications[i].CreatedAt.Equal(notifications[j].CreatedAt) {
			return notifications[i].ID < notifications[j].ID
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	s.mu.Lock()
	derived := make(map[string]struct{}, len(notifications))
	for i := range notifications {
		derived[notifications[i].ID] = struct{}{}
		if _, read := s.readIDs[notifications[i].ID]; read {
			notifications[i].Read = true
		}
	}
	s.lastDerived = derived
	s.mu.Unlock()

	return notifications, nil
}

// MarkNotificationRead flags an entry from the most recently derived list.
// The flag is keyed by the deterministic ID, so it sticks across regeneration
// for as long as the underlying condition keeps producing the same entry.
func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lastDerived[notificationID]; !ok {
		return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, notificationID)
	}
	s.readIDs[notificationID] = struct{}{}
	return nil
}
