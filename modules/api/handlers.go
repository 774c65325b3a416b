package api

import (
	"errors"

	domain "github.com/example/task-hub/domain/task"
	"github.com/example/task-hub/modules/task"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	// Health check endpoint
	app.Get("/health", m.healthHandler)

	// API v1 routes
	api := app.Group("/api/v1")

	// Task endpoints
	tasks := api.Group("/tasks")
	tasks.Post("/", m.createTask)
	tasks.Get("/", m.listTasks)
	tasks.Get("/last", m.lastTask)
	tasks.Post("/:id/complete", m.completeTask)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:        "ok",
		NetworkOnline: m.probe(c.UserContext()),
	})
}

// createTask handles POST /api/v1/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Title is required",
		})
	}

	// Call task service via adapter (driving adapter -> core domain)
	resp, err := m.taskPort.CreateTask(c.UserContext(), &task.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: err.Error(),
		})
	}

	sess, err := m.sessions.Get(c)
	if err != nil {
		m.logger.Warn("Failed to load session", "error", err)
	} else {
		sess.Set(lastTaskIDKey, resp.ID)
		if err := sess.Save(); err != nil {
			m.logger.Warn("Failed to save session", "error", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(TaskMessageResponse{
		TaskResponse: toTaskResponse(resp),
		Message:      translate("task_created", localeOf(c)),
	})
}

// listTasks handles GET /api/v1/tasks.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	resp, err := m.taskPort.ListTasks(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: err.Error(),
		})
	}

	tasks := make([]TaskResponse, 0, len(resp.Tasks))
	for i := range resp.Tasks {
		tasks = append(tasks, toTaskResponse(&resp.Tasks[i]))
	}

	return c.JSON(ListTasksResponse{
		Tasks: tasks,
		Total: resp.Total,
	})
}

// lastTask handles GET /api/v1/tasks/last.
func (m *APIModule) lastTask(c *fiber.Ctx) error {
	sess, err := m.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "session_error",
			Message: err.Error(),
		})
	}

	taskID, _ := sess.Get(lastTaskIDKey).(string)
	if taskID == "" {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "No task created in this session",
		})
	}

	return c.JSON(LastTaskResponse{TaskID: taskID})
}

// completeTask handles POST /api/v1/tasks/:id/complete.
func (m *APIModule) completeTask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid task ID",
		})
	}

	resp, err := m.taskPort.CompleteTask(c.UserContext(), id.String())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "complete_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(TaskMessageResponse{
		TaskResponse: toTaskResponse(resp),
		Message:      translate("task_completed", localeOf(c)),
	})
}

func toTaskResponse(t *task.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
