package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ayz-shop/internal/models"
	svc "ayz-shop/internal/service"
)

var verifyNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func trackedOrderStub() *storeStub {
	return &storeStub{
		orderByNumber: func(number string) (models.Order, error) {
			return models.Order{
				ID:           8,
				OrderNumber:  number,
				ContactEmail: "buyer@example.com",
				ContactPhone: "+92 (300) 123-4567",
			}, nil
		},
	}
}

func TestRequestTrackingCode_MismatchIsGeneric(t *testing.T) {
	s := newTestService(trackedOrderStub(), svc.WithClock(func() time.Time { return verifyNow }))

	_, err := s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Email: "other@example.com"})
	require.ErrorIs(t, err, svc.ErrDetailsMismatch)

	_, err = s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Phone: "111"})
	require.ErrorIs(t, err, svc.ErrDetailsMismatch)
}

func TestRequestTrackingCode_UnknownOrderSameError(t *testing.T) {
	s := newTestService(&storeStub{}, svc.WithClock(func() time.Time { return verifyNow }))

	_, err := s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Email: "buyer@example.com"})
	require.ErrorIs(t, err, svc.ErrDetailsMismatch)
}

func TestRequestTrackingCode_EmailMatchIsCaseInsensitive(t *testing.T) {
	st := trackedOrderStub()
	var challenge *models.TrackingChallenge
	st.createChallenge = func(c *models.TrackingChallenge) error { challenge = c; return nil }
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	out, err := s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Email: "BUYER@Example.COM"})
	require.NoError(t, err)
	require.Equal(t, models.ChannelEmail, out.Channel)
	require.Equal(t, "b***r@example.com", out.Masked)
	require.Empty(t, out.Code)

	require.NotNil(t, challenge)
	require.Len(t, challenge.Code, 6)
	require.Equal(t, verifyNow.Add(10*time.Minute), challenge.ExpiresAt)
}

func TestRequestTrackingCode_PhoneMatchIgnoresFormatting(t *testing.T) {
	st := trackedOrderStub()
	var challenge *models.TrackingChallenge
	st.createChallenge = func(c *models.TrackingChallenge) error { challenge = c; return nil }
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	out, err := s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Phone: "923001234567"})
	require.NoError(t, err)
	require.Equal(t, models.ChannelPhone, out.Channel)
	require.Equal(t, "********4567", out.Masked)
	require.Equal(t, "923001234567", challenge.Destination)
}

func TestRequestTrackingCode_CooldownWindow(t *testing.T) {
	st := trackedOrderStub()
	last := models.TrackingChallenge{CreatedAt: verifyNow.Add(-44 * time.Second)}
	st.lastChallengeFor = func(string) (models.TrackingChallenge, error) { return last, nil }
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	_, err := s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Email: "buyer@example.com"})
	require.ErrorIs(t, err, svc.ErrRateLimited)

	last.CreatedAt = verifyNow.Add(-46 * time.Second)
	_, err = s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Email: "buyer@example.com"})
	require.NoError(t, err)
}

func TestRequestTrackingCode_DestinationCeiling(t *testing.T) {
	st := trackedOrderStub()
	st.countByDest = func(string, time.Time) (int, error) { return 5, nil }
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	_, err := s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Email: "buyer@example.com"})
	require.ErrorIs(t, err, svc.ErrRateLimited)
}

func TestRequestTrackingCode_OrderCeiling(t *testing.T) {
	st := trackedOrderStub()
	st.countByOrder = func(uint, time.Time) (int, error) { return 12, nil }
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	_, err := s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Email: "buyer@example.com"})
	require.ErrorIs(t, err, svc.ErrRateLimited)
}

func TestRequestTrackingCode_RevealOnlyWhenConfigured(t *testing.T) {
	st := trackedOrderStub()
	s := newTestService(st,
		svc.WithClock(func() time.Time { return verifyNow }),
		svc.WithRevealCodes(true),
	)

	out, err := s.RequestTrackingCode(svc.TrackingCodeRequest{OrderNumber: "AYZ-260901-AAAAA", Email: "buyer@example.com"})
	require.NoError(t, err)
	require.Len(t, out.Code, 6)
}

func challengeStub(ch models.TrackingChallenge) *storeStub {
	return &storeStub{
		challengeByID: func(string) (models.TrackingChallenge, error) { return ch, nil },
	}
}

func TestVerifyTrackingCode_WrongCodeCountsAttempt(t *testing.T) {
	ch := models.TrackingChallenge{ID: "c-1", Code: "123456", Attempts: 3, ExpiresAt: verifyNow.Add(time.Minute)}
	st := challengeStub(ch)
	var saved *models.TrackingChallenge
	st.saveChallenge = func(c *models.TrackingChallenge) error { saved = c; return nil }
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	_, err := s.VerifyTrackingCode(svc.TrackingVerifyRequest{ChallengeID: "c-1", Code: "000000"})
	require.ErrorIs(t, err, svc.ErrConflict)
	require.Equal(t, 4, saved.Attempts)
	require.True(t, saved.ExpiresAt.After(verifyNow))
}

func TestVerifyTrackingCode_FifthFailureForceExpires(t *testing.T) {
	ch := models.TrackingChallenge{ID: "c-1", Code: "123456", Attempts: 4, ExpiresAt: verifyNow.Add(time.Minute)}
	st := challengeStub(ch)
	var saved *models.TrackingChallenge
	st.saveChallenge = func(c *models.TrackingChallenge) error { saved = c; return nil }
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	_, err := s.VerifyTrackingCode(svc.TrackingVerifyRequest{ChallengeID: "c-1", Code: "000000"})
	require.ErrorIs(t, err, svc.ErrConflict)
	require.Equal(t, 5, saved.Attempts)
	require.Equal(t, verifyNow, saved.ExpiresAt)
}

func TestVerifyTrackingCode_SixthAttemptRejectedEvenWhenCorrect(t *testing.T) {
	ch := models.TrackingChallenge{ID: "c-1", Code: "123456", Attempts: 5, ExpiresAt: verifyNow.Add(time.Minute)}
	s := newTestService(challengeStub(ch), svc.WithClock(func() time.Time { return verifyNow }))

	_, err := s.VerifyTrackingCode(svc.TrackingVerifyRequest{ChallengeID: "c-1", Code: "123456"})
	require.ErrorIs(t, err, svc.ErrConflict)
}

func TestVerifyTrackingCode_ConsumedAndExpiredRejected(t *testing.T) {
	s := newTestService(challengeStub(models.TrackingChallenge{
		ID: "c-1", Code: "123456", Consumed: true, ExpiresAt: verifyNow.Add(time.Minute),
	}), svc.WithClock(func() time.Time { return verifyNow }))
	_, err := s.VerifyTrackingCode(svc.TrackingVerifyRequest{ChallengeID: "c-1", Code: "123456"})
	require.ErrorIs(t, err, svc.ErrConflict)

	s = newTestService(challengeStub(models.TrackingChallenge{
		ID: "c-1", Code: "123456", ExpiresAt: verifyNow.Add(-time.Second),
	}), svc.WithClock(func() time.Time { return verifyNow }))
	_, err = s.VerifyTrackingCode(svc.TrackingVerifyRequest{ChallengeID: "c-1", Code: "123456"})
	require.ErrorIs(t, err, svc.ErrConflict)
}

func TestVerifyTrackingCode_MatchIssuesSession(t *testing.T) {
	ch := models.TrackingChallenge{ID: "c-1", OrderID: 8, OrderNumber: "AYZ-260901-AAAAA", Code: "123456", ExpiresAt: verifyNow.Add(time.Minute)}
	st := challengeStub(ch)
	var session *models.TrackingSession
	var consumed *models.TrackingChallenge
	st.saveChallenge = func(c *models.TrackingChallenge) error { consumed = c; return nil }
	st.createSession = func(s *models.TrackingSession) error { session = s; return nil }
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	access, err := s.VerifyTrackingCode(svc.TrackingVerifyRequest{ChallengeID: "c-1", Code: "123456", GuestToken: "g-1"})
	require.NoError(t, err)
	require.NotEmpty(t, access.Token)
	require.Equal(t, verifyNow.Add(30*time.Minute), access.ExpiresAt)

	require.True(t, consumed.Consumed)
	require.Equal(t, access.Token, session.Token)
	require.Equal(t, uint(8), session.OrderID)
	require.Equal(t, "g-1", session.GuestToken)
}

func TestGetVerifiedOrder_BadSessionsAreNil(t *testing.T) {
	clock := svc.WithClock(func() time.Time { return verifyNow })

	// missing token
	s := newTestService(&storeStub{}, clock)
	details, err := s.GetVerifiedOrder("nope")
	require.NoError(t, err)
	require.Nil(t, details)

	// expired session
	s = newTestService(&storeStub{
		sessionByToken: func(string) (models.TrackingSession, error) {
			return models.TrackingSession{OrderID: 8, ExpiresAt: verifyNow.Add(-time.Second)}, nil
		},
	}, clock)
	details, err = s.GetVerifiedOrder("t-1")
	require.NoError(t, err)
	require.Nil(t, details)

	// order number drifted since the session was minted
	s = newTestService(&storeStub{
		sessionByToken: func(string) (models.TrackingSession, error) {
			return models.TrackingSession{OrderID: 8, OrderNumber: "AYZ-260901-AAAAA", ExpiresAt: verifyNow.Add(time.Minute)}, nil
		},
		orderRelations: func(id uint) (models.Order, error) {
			return models.Order{ID: id, OrderNumber: "AYZ-260901-BBBBB"}, nil
		},
	}, clock)
	details, err = s.GetVerifiedOrder("t-1")
	require.NoError(t, err)
	require.Nil(t, details)
}

func TestGetVerifiedOrder_ReturnsProjection(t *testing.T) {
	st := &storeStub{
		sessionByToken: func(string) (models.TrackingSession, error) {
			return models.TrackingSession{OrderID: 8, OrderNumber: "AYZ-260901-AAAAA", ExpiresAt: verifyNow.Add(time.Minute)}, nil
		},
		orderRelations: func(id uint) (models.Order, error) {
			return models.Order{
				ID:              id,
				OrderNumber:     "AYZ-260901-AAAAA",
				PaymentMethodID: 2,
				Items:           []models.OrderItem{{ProductID: 10, Quantity: 1}},
			}, nil
		},
		paymentMethodByID: func(id uint) (models.PaymentMethod, error) {
			return models.PaymentMethod{ID: id, Name: "card"}, nil
		},
	}
	s := newTestService(st, svc.WithClock(func() time.Time { return verifyNow }))

	details, err := s.GetVerifiedOrder("t-1")
	require.NoError(t, err)
	require.NotNil(t, details)
	require.Len(t, details.Order.Items, 1)
	require.NotNil(t, details.PaymentMethod)
	require.Equal(t, "card", details.PaymentMethod.Name)
}
