package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/edunotice/edunotice-backend/internal/models"
	"github.com/edunotice/edunotice-backend/internal/services"
)

type TeacherHandler struct {
	service *services.TeacherService
}

func NewTeacherHandler(service *services.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// CreateTeacher handles POST /teachers
func (h *TeacherHandler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		FullName string `json:"fullname"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.Username == "" || body.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	teacher := &models.Teacher{
		Username: body.Username,
		FullName: body.FullName,
		Role:     body.Role,
	}
	if err := h.service.CreateTeacher(r.Context(), teacher, body.Password); err != nil {
		http.Error(w, "failed to create account: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"username": teacher.Username})
}

// GetTeachers handles GET /teachers
func (h *TeacherHandler) GetTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.TeacherList(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch accounts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(teachers)
}

// Login handles POST /login
func (h *TeacherHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	teacher, err := h.service.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(teacher)
}
