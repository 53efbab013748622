package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"slices"
	"sync"
	"time"

	"drivesafe/config"
	deliverycontext "drivesafe/internal/delivery/context"
	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/repository"
	"drivesafe/internal/domain/service"
	"drivesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// inviteAlphabet leaves out characters that are easy to misread (0/O, 1/I/L).
const inviteAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	contactAddedTitle = "Emergency contact added"
	contactAddedBody  = "%s is now one of your emergency contacts."
	notifyTimeout     = 30 * time.Second
)

type contactService struct {
	userRepo      repository.UserRepository
	contactRepo   repository.ContactRepository
	txManager     repository.TransactionManager
	qrCodeSvc     service.QRCodeService
	notifications usecase.NotificationUsecase
	inviteTTL     time.Duration
	codeLength    int
	logger        *slog.Logger

	// notifying tracks detached inviter notifications
	notifying sync.WaitGroup
}

// NewEmergencyContactService creates a new emergency contact service instance
func NewEmergencyContactService(
	userRepo repository.UserRepository,
	contactRepo repository.ContactRepository,
	txManager repository.TransactionManager,
	qrCodeSvc service.QRCodeService,
	notifications usecase.NotificationUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EmergencyContactUsecase {
	invite := cfg.Invite
	if invite == nil {
		invite = &config.InviteConfig{}
	}

	ttl := invite.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	length := invite.CodeLength
	if length <= 0 {
		length = 8
	}

	return &contactService{
		userRepo:      userRepo,
		contactRepo:   contactRepo,
		txManager:     txManager,
		qrCodeSvc:     qrCodeSvc,
		notifications: notifications,
		inviteTTL:     ttl,
		codeLength:    length,
		logger:        logger,
	}
}

func (s *contactService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GenerateInviteCode issues a fresh invitation code with its QR image
func (s *contactService) GenerateInviteCode(ctx context.Context, userID uuid.UUID) (*usecase.InviteCode, error) {
	code, err := generateInviteCode(s.codeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite code")
	}

	expiresAt := time.Now().Add(s.inviteTTL)
	if err := s.userRepo.SetInviteCode(ctx, userID, code, expiresAt); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to store invite code")
	}

	png, err := s.qrCodeSvc.GenerateInviteQR(code)
	if err != nil {
		s.getLogger(ctx).Error("Failed to render invite QR code", slog.Any("error", err))

		return nil, domainerrors.ErrQRCodeGenerationFailed
	}

	return &usecase.InviteCode{
		Code:      code,
		ExpiresAt: expiresAt,
		QRCodePNG: png,
	}, nil
}

// AcceptInvitation makes userID an emergency contact of the user holding the code.
// The code is single use. The inviter is told about the new contact on a best-effort basis.
func (s *contactService) AcceptInvitation(ctx context.Context, userID uuid.UUID, codeOrLink string) (*entity.Contact, error) {
	code, err := s.qrCodeSvc.ParseInviteQR(codeOrLink)
	if err != nil {
		return nil, domainerrors.ErrInviteCodeInvalid
	}

	var inviter *entity.User

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		users := factory.NewUserRepository()
		contacts := factory.NewContactRepository()

		found, err := users.FindByInviteCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInviteCodeInvalid
			}

			return errors.Wrap(err, "failed to find invite code")
		}

		if found.ID == userID {
			return domainerrors.ErrSelfEmergencyContact
		}
		if found.InviteExpiresAt == nil || time.Now().After(*found.InviteExpiresAt) {
			return domainerrors.ErrInviteCodeExpired
		}
		if slices.Contains(found.EmergencyContactIDs, userID) {
			return domainerrors.ErrEmergencyContactExists
		}

		if err := contacts.AddContact(ctx, found.ID, userID); err != nil {
			if errors.Is(err, repository.ErrDuplicateContact) {
				return domainerrors.ErrEmergencyContactExists
			}

			return errors.Wrap(err, "failed to add emergency contact")
		}

		if err := users.ClearInviteCode(ctx, found.ID); err != nil {
			return errors.Wrap(err, "failed to clear invite code")
		}

		inviter = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyInviterAsync(ctx, inviter.ID, userID)

	return &entity.Contact{
		ID:        inviter.ID,
		FirstName: inviter.FirstName,
		LastName:  inviter.LastName,
		Email:     inviter.Email,
	}, nil
}

// notifyInviterAsync sends the inviter notification in the background so the accept
// response never waits on the push provider.
func (s *contactService) notifyInviterAsync(ctx context.Context, inviterID, contactID uuid.UUID) {
	detached := context.WithoutCancel(ctx)

	s.notifying.Add(1)
	go func() {
		defer s.notifying.Done()

		notifyCtx, cancel := context.WithTimeout(detached, notifyTimeout)
		defer cancel()

		s.notifyInviter(notifyCtx, inviterID, contactID)
	}()
}

func (s *contactService) notifyInviter(ctx context.Context, inviterID, contactID uuid.UUID) {
	logger := s.getLogger(ctx)

	name := entity.DefaultContactName
	if contact, err := s.userRepo.FindByID(ctx, contactID); err == nil {
		name = contact.DisplayName()
	}

	result, err := s.notifications.SendGeneralNotification(ctx, inviterID, &usecase.GeneralNotification{
		Title: contactAddedTitle,
		Body:  fmt.Sprintf(contactAddedBody, name),
		Type:  entity.NotificationTypeGeneral,
		Data: map[string]any{
			"type":      "emergency_contact_added",
			"contactId": contactID.String(),
		},
	})
	if err != nil {
		logger.Warn("Failed to notify inviter", slog.String("inviter_id", inviterID.String()), slog.Any("error", err))

		return
	}

	logger.Debug("Inviter notified", slog.Any("result", result))
}

// ListContacts returns the user's emergency contacts in the order they were added
func (s *contactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if len(user.EmergencyContactIDs) == 0 {
		return []*entity.Contact{}, nil
	}

	contacts, err := s.contactRepo.ExpandContacts(ctx, user.EmergencyContactIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand emergency contacts")
	}

	return contacts, nil
}

// RemoveContact removes contactID from the user's emergency contacts
func (s *contactService) RemoveContact(ctx context.Context, userID, contactID uuid.UUID) error {
	if err := s.contactRepo.RemoveContact(ctx, userID, contactID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return domainerrors.ErrEmergencyContactNotFound
		}

		return errors.Wrap(err, "failed to remove emergency contact")
	}

	return nil
}

func generateInviteCode(length int) (string, error) {
	limit := big.NewInt(int64(len(inviteAlphabet)))
	code := make([]byte, length)

	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		code[i] = inviteAlphabet[n.Int64()]
	}

	return string(code), nil
}
