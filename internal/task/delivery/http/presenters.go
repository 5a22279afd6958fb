package http

import (
	"weather-task-tracker/internal/model"
	"weather-task-tracker/internal/task"
	"weather-task-tracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"    binding:"required,min=1,max=255"`
	Description string `json:"desc"    binding:"max=1000"`
	Date        string `json:"date"    binding:"required"`
	Weather     string `json:"weather" binding:"required,oneof=sunny cloudy rainy"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
		Weather:     model.WeatherCondition(r.Weather),
	}
}

// ---

type listReq struct {
	Weathers  []string `form:"weather"`
	Completed *bool    `form:"completed"`
}

func (r listReq) validate() error {
	for _, w := range r.Weathers {
		if _, ok := model.ParseCondition(w); !ok {
			return errInvalidWeatherFilter
		}
	}
	return nil
}

func (r listReq) toInput() task.ListTasksInput {
	weathers := make([]model.WeatherCondition, 0, len(r.Weathers))
	for _, w := range r.Weathers {
		if cond, ok := model.ParseCondition(w); ok {
			weathers = append(weathers, cond)
		}
	}
	return task.ListTasksInput{
		Weathers:  weathers,
		Completed: r.Completed,
	}
}

// ---

type editReq struct {
	ID          string `json:"-"` // populated from URI param
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"desc" binding:"max=1000"`
	Date        string `json:"date" binding:"required"`
}

func (r editReq) validate() error { return nil }

func (r editReq) toInput() task.EditTaskInput {
	return task.EditTaskInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"desc"`
	Date        string            `json:"date"`
	Weather     string            `json:"weather"`
	Completed   bool              `json:"completed"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newTaskResp(tk task.Task) taskResp {
	return taskResp{
		ID:          tk.ID,
		Name:        tk.Name,
		Description: tk.Description,
		Date:        tk.Date,
		Weather:     string(tk.Weather),
		Completed:   tk.Completed,
		CreatedAt:   response.DateTime(tk.CreatedAt),
		UpdatedAt:   response.DateTime(tk.UpdatedAt),
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, tk := range out.Tasks {
		tasks[i] = newTaskResp(tk)
	}
	return listResp{Tasks: tasks, Total: len(tasks)}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(out task.ToggleTaskOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task)}
}

type editResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newEditResp(out task.EditTaskOutput) editResp {
	return editResp{Task: newTaskResp(out.Task)}
}

type completeAllResp struct {
	Success       bool  `json:"success"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func (h *handler) newCompleteAllResp(out task.CompleteAllOutput) completeAllResp {
	return completeAllResp{Success: true, ModifiedCount: out.ModifiedCount}
}
