package request

const (
	ViewMonthly = "monthly"
	ViewYearly  = "yearly"
)

type Revenue struct {
	View string `query:"view" validate:"omitempty,oneof=monthly yearly"`
	Year int    `query:"year" validate:"omitempty,gte=1970,lte=9999"`
}
