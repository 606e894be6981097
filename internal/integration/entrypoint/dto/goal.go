package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Currency      string          `json:"currency,omitempty"`
	TargetDate    *string         `json:"target_date,omitempty"`
	Category      string          `json:"category,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title         *string          `json:"title,omitempty"`
	Description   *string          `json:"description,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	TargetDate    *string          `json:"target_date,omitempty"`
	Category      *string          `json:"category,omitempty"`
}

// GoalProgressRequest represents the request body for adding progress.
type GoalProgressRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	TargetAmount       string    `json:"target_amount"`
	CurrentAmount      string    `json:"current_amount"`
	Currency           string    `json:"currency"`
	TargetDate         *string   `json:"target_date,omitempty"`
	Category           string    `json:"category"`
	IsAchieved         bool      `json:"is_achieved"`
	ProgressPercentage string    `json:"progress_percentage"`
	DaysRemaining      *int      `json:"days_remaining"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalSummaryResponse represents the aggregate goal progress.
type GoalSummaryResponse struct {
	TotalGoals      int    `json:"total_goals"`
	AchievedGoals   int    `json:"achieved_goals"`
	TotalTarget     string `json:"total_target"`
	TotalSaved      string `json:"total_saved"`
	OverallProgress string `json:"overall_progress"`
}

// ToGoalResponse converts a goal output to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	g := output.Goal
	return GoalResponse{
		ID:                 g.ID.String(),
		UserID:             g.UserID.String(),
		Title:              g.Title,
		Description:        g.Description,
		TargetAmount:       g.TargetAmount.StringFixed(2),
		CurrentAmount:      g.CurrentAmount.StringFixed(2),
		Currency:           g.Currency,
		TargetDate:         formatDatePtr(g.TargetDate),
		Category:           g.Category,
		IsAchieved:         g.IsAchieved,
		ProgressPercentage: output.ProgressPercentage.StringFixed(2),
		DaysRemaining:      output.DaysRemaining,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

// ToGoalListResponse converts the goal listing output.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	response := GoalListResponse{Goals: make([]GoalResponse, 0, len(output.Goals))}
	for i := range output.Goals {
		response.Goals = append(response.Goals, ToGoalResponse(&output.Goals[i]))
	}
	return response
}

// ToGoalSummaryResponse converts the goal summary output.
func ToGoalSummaryResponse(output *goal.GoalSummaryOutput) GoalSummaryResponse {
	return GoalSummaryResponse{
		TotalGoals:      output.TotalGoals,
		AchievedGoals:   output.AchievedGoals,
		TotalTarget:     output.TotalTarget.StringFixed(2),
		TotalSaved:      output.TotalSaved.StringFixed(2),
		OverallProgress: output.OverallProgress.StringFixed(2),
	}
}
