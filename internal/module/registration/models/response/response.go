package response

import (
	"storefront-service/internal/module/registration/gate"
	"storefront-service/internal/module/registration/models/entity"
)

type Registration struct {
	entity.Registration
	Actions gate.Actions `json:"actions"`
}

type RegistrationList struct {
	Registrations []Registration `json:"registrations"`
}
