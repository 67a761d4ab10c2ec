package dto

type AuditQueryDTO struct {
	TimeRange string `form:"timeRange"`
}
