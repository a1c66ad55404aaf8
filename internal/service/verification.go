package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"ayz-shop/internal/models"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

const (
	codeTTL    = 10 * time.Minute
	sessionTTL = 30 * time.Minute

	destinationCooldown = 45 * time.Second
	rateWindow          = 10 * time.Minute
	maxCodesPerDest     = 5
	maxCodesPerOrder    = 12
	maxCodeAttempts     = 5
)

type TrackingCodeRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

type TrackingCodeChallenge struct {
	ChallengeID string                 `json:"challenge_id"`
	Channel     models.TrackingChannel `json:"channel"`
	Masked      string                 `json:"masked_destination"`
	ExpiresAt   time.Time              `json:"expires_at"`

	// Code is populated only when code delivery is bypassed (dev/test).
	Code string `json:"code,omitempty"`
}

type TrackingVerifyRequest struct {
	ChallengeID string `json:"challenge_id" validate:"required"`
	Code        string `json:"code" validate:"required"`
	GuestToken  string `json:"guest_token"`
}

type TrackingAccess struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RequestTrackingCode issues a one-time code for guest order access.
// Order-not-found and contact mismatch both collapse into the same
// generic error so the endpoint cannot be used to probe order numbers.
func (s *Service) RequestTrackingCode(in TrackingCodeRequest) (TrackingCodeChallenge, error) {
	if err := s.v.Struct(in); err != nil {
		return TrackingCodeChallenge{}, humanizeValidationErrors(err)
	}
	if in.Email == "" && in.Phone == "" {
		return TrackingCodeChallenge{}, fmt.Errorf("%w: email or phone is required", ErrValidation)
	}

	ord, err := s.OrderByNumber(in.OrderNumber)
	if gorm.IsRecordNotFoundError(err) {
		return TrackingCodeChallenge{}, ErrDetailsMismatch
	}
	if err != nil {
		return TrackingCodeChallenge{}, err
	}

	channel, destination, masked, ok := matchContact(ord, in.Email, in.Phone)
	if !ok {
		return TrackingCodeChallenge{}, ErrDetailsMismatch
	}

	now := s.now()
	last, err := s.LastChallengeFor(destination)
	if err != nil && !gorm.IsRecordNotFoundError(err) {
		return TrackingCodeChallenge{}, err
	}
	if err == nil && now.Sub(last.CreatedAt) < destinationCooldown {
		return TrackingCodeChallenge{}, fmt.Errorf("%w: wait before requesting another code", ErrRateLimited)
	}

	since := now.Add(-rateWindow)
	byDest, err := s.CountChallengesByDestination(destination, since)
	if err != nil {
		return TrackingCodeChallenge{}, err
	}
	if byDest >= maxCodesPerDest {
		return TrackingCodeChallenge{}, fmt.Errorf("%w: too many codes for this destination", ErrRateLimited)
	}
	byOrder, err := s.CountChallengesByOrder(ord.ID, since)
	if err != nil {
		return TrackingCodeChallenge{}, err
	}
	if byOrder >= maxCodesPerOrder {
		return TrackingCodeChallenge{}, fmt.Errorf("%w: too many codes for this order", ErrRateLimited)
	}

	code, err := newVerificationCode()
	if err != nil {
		return TrackingCodeChallenge{}, err
	}

	challenge := models.TrackingChallenge{
		ID:          uuid.NewString(),
		OrderID:     ord.ID,
		OrderNumber: ord.OrderNumber,
		Channel:     channel,
		Destination: destination,
		Masked:      masked,
		Code:        code,
		ExpiresAt:   now.Add(codeTTL),
	}
	if err := s.CreateChallenge(&challenge); err != nil {
		return TrackingCodeChallenge{}, err
	}

	out := TrackingCodeChallenge{
		ChallengeID: challenge.ID,
		Channel:     channel,
		Masked:      masked,
		ExpiresAt:   challenge.ExpiresAt,
	}
	if s.revealCodes {
		out.Code = code
	}
	return out, nil
}

// VerifyTrackingCode exchanges a correct code for a session token. The
// consumed/expired/attempt-ceiling checks run before the comparison, so
// a correct code on an exhausted challenge still fails.
func (s *Service) VerifyTrackingCode(in TrackingVerifyRequest) (TrackingAccess, error) {
	if err := s.v.Struct(in); err != nil {
		return TrackingAccess{}, humanizeValidationErrors(err)
	}

	challenge, err := s.ChallengeByID(in.ChallengeID)
	if gorm.IsRecordNotFoundError(err) {
		return TrackingAccess{}, fmt.Errorf("%w: unknown challenge", ErrConflict)
	}
	if err != nil {
		return TrackingAccess{}, err
	}

	now := s.now()
	switch {
	case challenge.Consumed:
		return TrackingAccess{}, fmt.Errorf("%w: code already used", ErrConflict)
	case challenge.Expired(now):
		return TrackingAccess{}, fmt.Errorf("%w: code expired", ErrConflict)
	case challenge.Attempts >= maxCodeAttempts:
		return TrackingAccess{}, fmt.Errorf("%w: too many attempts", ErrConflict)
	}

	if challenge.Code != in.Code {
		challenge.Attempts++
		if challenge.Attempts >= maxCodeAttempts {
			challenge.ExpiresAt = now
		}
		if err := s.SaveChallenge(&challenge); err != nil {
			return TrackingAccess{}, err
		}
		return TrackingAccess{}, fmt.Errorf("%w: incorrect code", ErrConflict)
	}

	challenge.Consumed = true
	if err := s.SaveChallenge(&challenge); err != nil {
		return TrackingAccess{}, err
	}

	token, err := newSessionToken(now)
	if err != nil {
		return TrackingAccess{}, err
	}
	session := models.TrackingSession{
		Token:       token,
		OrderID:     challenge.OrderID,
		OrderNumber: challenge.OrderNumber,
		GuestToken:  in.GuestToken,
		ExpiresAt:   now.Add(sessionTTL),
	}
	if err := s.CreateTrackingSession(&session); err != nil {
		return TrackingAccess{}, err
	}
	return TrackingAccess{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// GetVerifiedOrder resolves a session token into the order projection.
// Any defect in the session (missing, expired, stale binding) returns
// nil with no error: the token is simply not good.
func (s *Service) GetVerifiedOrder(token string) (*models.OrderWithDetails, error) {
	session, err := s.TrackingSessionByToken(token)
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, nil
	}

	ord, err := s.OrderRelations(session.OrderID)
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if ord.OrderNumber != session.OrderNumber {
		return nil, nil
	}
	if session.GuestToken != "" && ord.GuestToken != "" && session.GuestToken != ord.GuestToken {
		return nil, nil
	}

	details := models.OrderWithDetails{Order: ord}
	if ord.PaymentMethodID != 0 {
		if pm, err := s.PaymentMethodByID(ord.PaymentMethodID); err == nil {
			details.PaymentMethod = &pm
		}
	}
	return &details, nil
}

// matchContact picks the channel the caller proved. Email compares
// case-insensitively, phone on digits only.
func matchContact(ord models.Order, email, phone string) (models.TrackingChannel, string, string, bool) {
	if email != "" && strings.EqualFold(strings.TrimSpace(email), ord.ContactEmail) {
		return models.ChannelEmail, strings.ToLower(ord.ContactEmail), maskEmail(ord.ContactEmail), true
	}
	if phone != "" && digitsOnly(phone) != "" && digitsOnly(phone) == digitsOnly(ord.ContactPhone) {
		return models.ChannelPhone, digitsOnly(ord.ContactPhone), maskPhone(ord.ContactPhone), true
	}
	return "", "", "", false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return strings.Repeat("*", len(local)) + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:] + domain
}

func maskPhone(phone string) string {
	digits := digitsOnly(phone)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

func newVerificationCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "reading code entropy")
	}
	n := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	return fmt.Sprintf("%06d", n%1000000), nil
}

func newSessionToken(now time.Time) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "reading token entropy")
	}
	return fmt.Sprintf("%d.%s.%s", now.Unix(), hex.EncodeToString(buf[:8]), hex.EncodeToString(buf[8:])), nil
}
