package response

import "storefront-service/internal/module/stats/models/entity"

type Users struct {
	Total int           `json:"total"`
	Users []entity.User `json:"users"`
}

type Registrations struct {
	Total         int                   `json:"total"`
	Registrations []entity.Registration `json:"registrations"`
}

type Payments struct {
	Total    int              `json:"total"`
	Payments []entity.Payment `json:"payments"`
}

// Revenue holds one bucket per UTC month, January first. Year is only set
// for the yearly view.
type Revenue struct {
	View    string      `json:"view"`
	Year    int         `json:"year,omitempty"`
	Labels  [12]string  `json:"labels"`
	Monthly [12]float64 `json:"monthly"`
	Total   float64     `json:"total"`
	Skipped int         `json:"skipped"`
}

type Overview struct {
	Users         int     `json:"users"`
	Registrations int     `json:"registrations"`
	Payments      int     `json:"payments"`
	Revenue       float64 `json:"revenue"`
}
