package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"StaffPortal/internal/config"
	"StaffPortal/internal/middleware"
	"StaffPortal/internal/model"
	"StaffPortal/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StaffHandler обслуживает ресурс сотрудников и вход/регистрацию.
type StaffHandler struct {
	StaffService *service.StaffService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

// NewStaffHandler создаёт хендлер сотрудников.
func NewStaffHandler(staffService *service.StaffService, logger *zap.SugaredLogger, cfg *config.Config) *StaffHandler {
	return &StaffHandler{StaffService: staffService, Logger: logger, Config: cfg}
}

// SignInRequest — тело запроса входа.
type SignInRequest struct {
	MSNV     string `json:"MSNV"`
	Password string `json:"Password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type dataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type signInResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Data    *model.Staff `json:"data"`
}

type deleteAllResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeServiceError переводит ошибку сервиса в HTTP-статус.
func (h *StaffHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "staff not found")
	case errors.Is(err, service.ErrMSNVTaken):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		h.Logger.Errorw(op+": service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *StaffHandler) decodeInput(w http.ResponseWriter, r *http.Request, op string) (model.StaffInput, bool) {
	var in model.StaffInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw(op+": invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return in, false
	}
	return in, true
}

// SignUp регистрация сотрудника
func (h *StaffHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r, "SignUp")
	if !ok {
		return
	}
	st, err := h.StaffService.SignUp(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, "SignUp", err)
		return
	}
	h.Logger.Infow("staff registered", "id", st.ID, "msnv", st.MSNV)
	writeJSON(w, http.StatusCreated, dataResponse{Message: "staff registered", Data: st})
}

// SignIn вход сотрудника: выдаёт JWT с claim userId
func (h *StaffHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("SignIn: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	st, err := h.StaffService.SignIn(r.Context(), req.MSNV, req.Password)
	if err != nil {
		h.writeServiceError(w, "SignIn", err)
		return
	}
	token, err := middleware.BuildToken(st.ID, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.Logger.Errorw("SignIn: failed to build token", "id", st.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, signInResponse{Message: "signed in", Token: token, Data: st})
}

// List список сотрудников
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.StaffService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, "List", err)
		return
	}
	if list == nil {
		list = []model.Staff{}
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: list})
}

// Create создание сотрудника
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r, "Create")
	if !ok {
		return
	}
	st, err := h.StaffService.Create(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, "Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, dataResponse{Message: "staff created", Data: st})
}

// DeleteAll удаление всех сотрудников
func (h *StaffHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.StaffService.DeleteAll(r.Context())
	if err != nil {
		h.writeServiceError(w, "DeleteAll", err)
		return
	}
	uid, _ := middleware.GetUserIDFromContext(r.Context())
	h.Logger.Infow("all staff deleted", "by", uid, "count", n)
	writeJSON(w, http.StatusOK, deleteAllResponse{Message: "all staff deleted", DeletedCount: n})
}

// Get сотрудник по id
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.StaffService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, "Get", err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: st})
}

// Update обновление сотрудника
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r, "Update")
	if !ok {
		return
	}
	st, err := h.StaffService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeServiceError(w, "Update", err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Message: "staff updated", Data: st})
}

// Delete удаление сотрудника
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.StaffService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, "Delete", err)
		return
	}
	writeMessage(w, http.StatusOK, "staff deleted")
}
