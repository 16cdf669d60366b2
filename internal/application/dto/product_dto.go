package dto

// UploadProductForm artisan listing submission. Price arrives as the raw
// form string and is parsed to a decimal in the use case.
type UploadProductForm struct {
	Name          string `form:"name" validate:"required,max=255"`
	Description   string `form:"description" validate:"required"`
	Price         string `form:"price" validate:"required"`
	Region        string `form:"region" validate:"max=255"`
	CulturalStory string `form:"cultural_story"`
	CraftProcess  string `form:"craft_process"`
	ImpactScore   int    `form:"impact_score" validate:"gte=0,lte=100"`
}

// VerifyForm consultant attestation submission.
type VerifyForm struct {
	Status string `form:"status" validate:"required,oneof=VERIFIED REJECTED"`
	Note   string `form:"note"`
}
