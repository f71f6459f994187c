package validators

import (
	"neuraflow/pkg/relay"
)

// ValidateRelayPayload checks an inbound relay body before it is forwarded.
// Date is accepted as an arbitrary string; the submitting client stamps it.
func ValidateRelayPayload(payload *relay.Payload) ValidationErrors {
	return ValidateStruct(payload)
}
