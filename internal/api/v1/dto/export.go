package dto

// ExportQuery represents parameters for export requests
type ExportQuery struct {
	Format string `form:"format,default=csv" binding:"omitempty,oneof=csv json xlsx"`
	Kind   string `form:"kind" binding:"omitempty,oneof=delete rename copy archive"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100000"`
}
