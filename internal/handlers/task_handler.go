package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/services"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// TaskHandler handles HTTP requests related to tasks.
type TaskHandler struct {
	Service *services.TaskService
}

// NewTaskHandler creates a new instance of TaskHandler.
func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

// CreateTaskHandler handles the creation of a new task.
func (h *TaskHandler) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.WithError(err).Warn("Invalid task payload during creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	created, err := h.Service.CreateTask(r.Context(), userID, &task)
	if err != nil {
		log.WithError(err).Warn("Failed to create task")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.WithFields(log.Fields{
		"userID": userID.Hex(),
		"taskID": created.ID.Hex(),
	}).Info("Task successfully created")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

// GetTaskHandler fetches a single task by its ID.
func (h *TaskHandler) GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}
	taskID := mux.Vars(r)["id"]

	task, err := h.Service.GetTask(r.Context(), userID, taskID)
	if err != nil {
		h.writeTaskError(w, taskID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}

// GetTasksHandler lists the user's tasks, optionally filtered by the
// "completed" query parameter.
func (h *TaskHandler) GetTasksHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	var completed *bool
	if raw := r.URL.Query().Get("completed"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "Invalid completed filter", http.StatusBadRequest)
			return
		}
		completed = &parsed
	}

	tasks, err := h.Service.GetTasks(r.Context(), userID, completed)
	if err != nil {
		log.WithError(err).Error("Failed to retrieve tasks")
		http.Error(w, "Failed to retrieve tasks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// UpdateTaskHandler applies a partial update to a task.
func (h *TaskHandler) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}
	taskID := mux.Vars(r)["id"]

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.WithError(err).Warn("Invalid task update payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	updated, err := h.Service.UpdateTask(r.Context(), userID, taskID, &update)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			h.writeTaskError(w, taskID, err)
			return
		}
		log.WithError(err).Warn("Failed to update task")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.WithFields(log.Fields{
		"userID": userID.Hex(),
		"taskID": taskID,
	}).Info("Task successfully updated")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// DeleteTaskHandler removes a task.
func (h *TaskHandler) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}
	taskID := mux.Vars(r)["id"]

	if err := h.Service.DeleteTask(r.Context(), userID, taskID); err != nil {
		h.writeTaskError(w, taskID, err)
		return
	}

	log.WithFields(log.Fields{
		"userID": userID.Hex(),
		"taskID": taskID,
	}).Info("Task deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// writeTaskError maps service errors to HTTP responses. Missing and foreign
// tasks both surface as 404.
func (h *TaskHandler) writeTaskError(w http.ResponseWriter, taskID string, err error) {
	if errors.Is(err, services.ErrTaskNotFound) {
		log.WithField("taskID", taskID).Warn("Task not found or not owned by caller")
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	log.WithField("taskID", taskID).WithError(err).Error("Task operation failed")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
