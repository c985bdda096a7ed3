package api

import (
	"activity-booking/internal/pkg/errs"
)

var (
	errInvalidQuery   = errs.Define(errs.ErrValidation, "invalid query parameter")
	errInvalidPathID  = errs.Define(errs.ErrValidation, "invalid id")
	errInvalidOutcome = errs.Define(errs.ErrValidation, "status must be SUCCEEDED or FAILED")
	errWebhookIntent  = errs.Define(errs.ErrValidation, "intent settles through the processor webhook")
)
