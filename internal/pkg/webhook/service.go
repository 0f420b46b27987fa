package webhook

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/campfirehq/campfire/app/models"
	"github.com/campfirehq/campfire/internal/pkg/identity"
	"github.com/campfirehq/campfire/internal/pkg/mail"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaleDeliveryMessage marks audit rows abandoned mid-processing, e.g. by a
// crash between the insert and the terminal update.
const StaleDeliveryMessage = "stale processing delivery"

const unhandledMessage = "received but not processed"

// Service runs the fulfillment pipeline for inbound payment deliveries:
// normalize, audit, gate, route, fulfill or revoke, finalize audit.
type Service struct {
	repo     Repository
	accounts identity.Provider
	mailer   mail.Mailer
}

// NewService creates a pipeline service from injected collaborators.
func NewService(repo Repository, accounts identity.Provider, mailer mail.Mailer) *Service {
	return &Service{repo: repo, accounts: accounts, mailer: mailer}
}

// NewServiceFromDB wires the default GORM repository, local identity
// provider and SMTP mailer.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db), identity.NewGormProvider(db), mail.NewSMTPMailer())
}

// Process handles one delivery end to end. The returned error classifies the
// failure for the HTTP layer (ErrIntegrationInactive, ErrInvalidSignature,
// ErrIncompleteData, or an unexpected handler error); every terminal outcome
// is also written to the audit row when one exists.
func (s *Service) Process(ctx context.Context, rawBody []byte, signatureHeader string) (*Outcome, error) {
	ev := Normalize(rawBody)

	// The audit row is written before any business logic so even rejected
	// deliveries leave a trace. Insert failure degrades to unaudited
	// processing instead of aborting (fail open).
	delivery := &models.WebhookDelivery{
		EventType:     ev.Type,
		CustomerEmail: ev.CustomerEmail,
		CustomerName:  ev.CustomerName,
		OrderID:       ev.OrderID,
		ProductID:     ev.ProductID,
		Status:        models.DeliveryStatusProcessing,
		RawPayload:    ev.RawPayload,
	}
	if err := s.repo.CreateDelivery(delivery); err != nil {
		log.Printf("webhook: audit log insert failed, continuing without audit: %v", err)
		delivery.ID = 0
	}

	settings, err := s.repo.GetIntegrationSetting()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.finish(delivery, models.DeliveryStatusError, err.Error())
		return nil, err
	}
	if settings == nil || !settings.IsActive {
		s.finish(delivery, models.DeliveryStatusError, ErrIntegrationInactive.Error())
		return nil, ErrIntegrationInactive
	}

	// A configured shared secret makes signature verification mandatory. An
	// empty secret preserves the legacy unauthenticated behavior.
	if settings.SharedSecret != "" && !VerifySignature(rawBody, signatureHeader, settings.SharedSecret) {
		s.finish(delivery, models.DeliveryStatusError, ErrInvalidSignature.Error())
		return nil, ErrInvalidSignature
	}

	outcome := &Outcome{DeliveryID: delivery.ID, EventType: ev.Type}

	var handlerErr error
	switch {
	case ev.Type == EventOrderApproved:
		handlerErr = s.fulfill(ctx, ev)
		outcome.Handled = true
	case ev.IsRevocation():
		handlerErr = s.revoke(ctx, ev)
		outcome.Handled = true
	default:
		s.finish(delivery, models.DeliveryStatusSuccess, unhandledMessage)
		outcome.Message = unhandledMessage
		return outcome, nil
	}

	if handlerErr != nil {
		s.finish(delivery, models.DeliveryStatusError, handlerErr.Error())
		return nil, handlerErr
	}

	s.finish(delivery, models.DeliveryStatusSuccess, "")
	outcome.Message = "processed"
	return outcome, nil
}

// fulfill provisions an account and community access for a paid order.
// Repeat deliveries for a known email reuse the existing account and send no
// second welcome mail; repeat deliveries for a known order id insert no
// second purchase row.
func (s *Service) fulfill(ctx context.Context, ev Event) error {
	email := ev.CustomerEmail
	if ev.OrderID == "" || email == "" || email == UnknownField {
		return ErrIncompleteData
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	switch {
	case err == nil:
		// Idempotent path: reuse the existing account.
	case errors.Is(err, identity.ErrNotFound):
		account, err = s.provisionAccount(ctx, ev)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("account lookup failed: %w", err)
	}

	purchase := &models.Purchase{
		OrderID:       ev.OrderID,
		ProductID:     ev.ProductID,
		CustomerEmail: email,
		CustomerName:  ev.CustomerName,
		UserID:        &account.ID,
		Status:        models.PurchaseStatusPaid,
		AccessGranted: true,
		PurchaseDate:  time.Now(),
		RawPayload:    ev.RawPayload,
	}
	created, err := s.repo.CreatePurchaseIfNotExists(purchase)
	if err != nil {
		// Access is already granted via the account; do not fail the
		// delivery over a secondary write.
		log.Printf("webhook: purchase insert failed for order %s: %v", ev.OrderID, err)
		return nil
	}
	if !created {
		log.Printf("webhook: order %s already fulfilled, skipping duplicate purchase", ev.OrderID)
	}
	return nil
}

// provisionAccount creates the identity, profile, welcome mail and purchase
// notification for a first-time customer. Identity and profile failures are
// fatal to the delivery; mail and notification failures are logged only.
func (s *Service) provisionAccount(ctx context.Context, ev Event) (*identity.Account, error) {
	password, err := models.GenerateRandomPassword()
	if err != nil {
		return nil, fmt.Errorf("password generation failed: %w", err)
	}

	account, err := s.accounts.Create(ctx, ev.CustomerEmail, password, true)
	if errors.Is(err, identity.ErrEmailTaken) {
		// Lost the create/create race: someone else provisioned this email
		// between our lookup and insert. Re-fetch and take the reuse path.
		return s.accounts.FindByEmail(ctx, ev.CustomerEmail)
	}
	if err != nil {
		return nil, fmt.Errorf("account creation failed: %w", err)
	}

	username := models.UsernameFromEmail(ev.CustomerEmail)
	if taken, err := s.repo.UsernameExists(username); err == nil && taken {
		username = username + uuid.NewString()[:8]
	}

	profile := &models.Profile{
		UserID:   account.ID,
		Email:    ev.CustomerEmail,
		Username: username,
		FullName: ev.CustomerName,
		Role:     models.ROLE_USER,
	}
	if err := s.repo.CreateProfile(profile); err != nil {
		return nil, fmt.Errorf("profile creation failed: %w", err)
	}

	if err := s.mailer.Send(ev.CustomerEmail, "Welcome to the community", welcomeBody(ev.CustomerName)); err != nil {
		log.Printf("webhook: welcome mail to %s failed: %v", ev.CustomerEmail, err)
	}

	if err := s.repo.CreateNotification(account.ID, models.NotificationTypePurchase, "Your purchase was confirmed. Welcome aboard!"); err != nil {
		log.Printf("webhook: purchase notification for user %d failed: %v", account.ID, err)
	}

	return account, nil
}

// revoke removes community access for a refunded, charged-back or canceled
// order. A missing order id or an unknown order are quiet no-ops.
func (s *Service) revoke(ctx context.Context, ev Event) error {
	_ = ctx
	if ev.OrderID == "" {
		return nil
	}

	purchase, err := s.repo.GetPurchaseByOrderID(ev.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("purchase lookup failed: %w", err)
	}

	if err := s.repo.RevokePurchase(purchase, ev.RawPayload, time.Now()); err != nil {
		return fmt.Errorf("access revocation failed: %w", err)
	}

	if purchase.UserID != nil {
		if err := s.repo.CreateNotification(*purchase.UserID, models.NotificationTypeRefund, "Your purchase was refunded and community access was removed."); err != nil {
			log.Printf("webhook: refund notification for user %d failed: %v", *purchase.UserID, err)
		}
	}
	return nil
}

// ReconcileStale marks processing rows older than maxAge as failed so a
// crash mid-handler cannot leave deliveries in "processing" forever.
func (s *Service) ReconcileStale(maxAge time.Duration) (int64, error) {
	return s.repo.MarkStaleDeliveriesFailed(time.Now().Add(-maxAge), StaleDeliveryMessage)
}

func (s *Service) finish(delivery *models.WebhookDelivery, status, message string) {
	if delivery.ID == 0 {
		return
	}
	if err := s.repo.FinishDelivery(delivery.ID, status, message); err != nil {
		log.Printf("webhook: audit log update for delivery %d failed: %v", delivery.ID, err)
	}
}

func welcomeBody(name string) string {
	greeting := "Hi"
	if name != "" {
		greeting = "Hi " + name
	}
	return fmt.Sprintf(
		"<p>%s,</p>"+
			"<p>your purchase was confirmed and your community account is ready.</p>"+
			"<p>Use the \"forgot password\" option on the login page to set your own password.</p>",
		greeting,
	)
}
