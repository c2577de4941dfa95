package domain

// SubmissionStatus tracks an online order submission through its steps.
// The cart is cleared only as a side effect of reaching Completed.
type SubmissionStatus string

const (
	SubmissionStatusInitiated       SubmissionStatus = "INITIATED"
	SubmissionStatusOrderCreated    SubmissionStatus = "ORDER_CREATED"
	SubmissionStatusPaymentCaptured SubmissionStatus = "PAYMENT_CAPTURED"
	SubmissionStatusVerified        SubmissionStatus = "VERIFIED"
	SubmissionStatusPersisted       SubmissionStatus = "PERSISTED"
	SubmissionStatusCompleted       SubmissionStatus = "COMPLETED"
	SubmissionStatusFailed          SubmissionStatus = "FAILED"
)

var submissionTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionStatusInitiated:       {SubmissionStatusOrderCreated, SubmissionStatusPersisted, SubmissionStatusFailed},
	SubmissionStatusOrderCreated:    {SubmissionStatusPaymentCaptured, SubmissionStatusFailed},
	SubmissionStatusPaymentCaptured: {SubmissionStatusVerified, SubmissionStatusFailed},
	SubmissionStatusVerified:        {SubmissionStatusPersisted, SubmissionStatusFailed},
	SubmissionStatusPersisted:       {SubmissionStatusCompleted, SubmissionStatusFailed},
}

func CanTransitionTo(from, to SubmissionStatus) bool {
	for _, next := range submissionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusCompleted || s == SubmissionStatusFailed
}

// String representation (for logging)
func (s SubmissionStatus) String() string {
	return string(s)
}
