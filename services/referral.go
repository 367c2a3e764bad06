package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReferralCredit names the two customers credited when a referred customer
// finishes their first appointment.
type ReferralCredit struct {
	ReferredID uuid.UUID
	ReferrerID uuid.UUID
}

// ReferralTrigger decides whether finishing an appointment earns a referral
// credit. The referred customer's own counter being zero is the only guard, so
// later finished appointments never credit again. The credit itself is written
// by the store together with the appointment.
type ReferralTrigger struct {
	customers CustomerDirectory
	logger    *zap.Logger
}

func NewReferralTrigger(customers CustomerDirectory, logger *zap.Logger) *ReferralTrigger {
	return &ReferralTrigger{customers: customers, logger: logger}
}

// Eligible returns nil when the customer has nothing to credit.
func (r *ReferralTrigger) Eligible(ctx context.Context, customerID uuid.UUID) (*ReferralCredit, error) {
	referred, err := r.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if referred.ReferralCodeUsed == "" || referred.ReferralCodeCount != 0 {
		return nil, nil
	}

	referrer, err := r.customers.FindByReferralCode(ctx, referred.ReferralCodeUsed)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			r.logger.Warn("referral code does not resolve",
				zap.String("customer_id", customerID.String()),
				zap.String("code", referred.ReferralCodeUsed))
			return nil, nil
		}
		return nil, err
	}
	return &ReferralCredit{ReferredID: referred.ID, ReferrerID: referrer.ID}, nil
}
