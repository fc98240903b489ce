package handler

import (
	"github.com/campusworks/job-board/internal/core/domain"
	"github.com/campusworks/job-board/internal/validate"
)

type createJobRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Pay   string `json:"pay"`
}

var createJobSchema = validate.Schema{
	{Name: "title", Funcs: []validate.Func{validate.String(3, 200)}},
	{Name: "date", Funcs: []validate.Func{validate.Required(), validate.Date()}},
	{Name: "pay", Funcs: []validate.Func{validate.String(1, 100)}},
}

func (r createJobRequest) payload() map[string]any {
	return map[string]any{
		"title": r.Title,
		"date":  r.Date,
		"pay":   r.Pay,
	}
}

type updateJobRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Pay   string `json:"pay"`
}

var updateJobSchema = validate.Schema{
	{Name: "id", Funcs: []validate.Func{validate.Required()}},
	{Name: "title", Funcs: []validate.Func{validate.Required()}},
	{Name: "date", Funcs: []validate.Func{validate.Required(), validate.Date()}},
	{Name: "pay", Funcs: []validate.Func{validate.Required()}},
}

func (r updateJobRequest) payload() map[string]any {
	return map[string]any{
		"id":    r.ID,
		"title": r.Title,
		"date":  r.Date,
		"pay":   r.Pay,
	}
}

type jobResponse struct {
	Job *domain.Job `json:"job"`
}

type jobListResponse struct {
	Jobs []domain.Job `json:"jobs"`
}

type successResponse struct {
	Success bool `json:"success"`
}
