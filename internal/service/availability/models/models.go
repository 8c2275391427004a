package models

import (
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// Request модели

// DayRequest расписание одного дня недели. DayOfWeek: 0 = воскресенье
type DayRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	IsActive  *bool  `json:"isActive,omitempty"`
}

// ReplaceTemplateRequest полная замена недельного расписания
type ReplaceTemplateRequest struct {
	UserID int64
	Days   []DayRequest
}

// CreateBlockedPeriodRequest запрос на создание периода недоступности
type CreateBlockedPeriodRequest struct {
	UserID    int64
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
}

// ListBlockedPeriodsRequest фильтр периодов. Границы опциональны
type ListBlockedPeriodsRequest struct {
	UserID int64
	From   *time.Time
	To     *time.Time
}

// Response модели

// DayResponse строка недельного расписания
type DayResponse struct {
	ID        int64     `json:"id"`
	DayOfWeek int       `json:"dayOfWeek"`
	DayName   string    `json:"dayName"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TemplateResponse недельное расписание компании
type TemplateResponse struct {
	CompanyID int64         `json:"companyId"`
	Days      []DayResponse `json:"days"`
}

// BlockedPeriodResponse период недоступности
type BlockedPeriodResponse struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"companyId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedPeriodListResponse список периодов
type BlockedPeriodListResponse struct {
	BlockedPeriods []BlockedPeriodResponse `json:"blockedPeriods"`
}

// Методы конвертации

// FromDomainTemplate конвертирует строки расписания в DTO
func FromDomainTemplate(companyID int64, rows []*domain.WeeklyAvailability) *TemplateResponse {
	resp := &TemplateResponse{
		CompanyID: companyID,
		Days:      make([]DayResponse, 0, len(rows)),
	}

	for _, row := range rows {
		if row == nil {
			continue
		}
		resp.Days = append(resp.Days, DayResponse{
			ID:        row.ID,
			DayOfWeek: int(row.DayOfWeek),
			DayName:   row.DayOfWeek.String(),
			StartTime: row.StartTime.String(),
			EndTime:   row.EndTime.String(),
			IsActive:  row.IsActive,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return resp
}

// FromDomainBlockedPeriod конвертирует domain модель в DTO
func FromDomainBlockedPeriod(p *domain.BlockedPeriod) *BlockedPeriodResponse {
	if p == nil {
		return nil
	}

	return &BlockedPeriodResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		Reason:    p.Reason,
		CreatedAt: p.CreatedAt,
	}
}

// FromDomainBlockedPeriodList конвертирует список domain моделей в DTO
func FromDomainBlockedPeriodList(periods []*domain.BlockedPeriod) *BlockedPeriodListResponse {
	resp := &BlockedPeriodListResponse{
		BlockedPeriods: make([]BlockedPeriodResponse, 0, len(periods)),
	}

	for _, p := range periods {
		if dto := FromDomainBlockedPeriod(p); dto != nil {
			resp.BlockedPeriods = append(resp.BlockedPeriods, *dto)
		}
	}

	return resp
}
