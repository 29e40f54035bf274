package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-management/internal/employee/domain"
	"github.com/tair/inventory-management/internal/employee/usecase/command"
	"github.com/tair/inventory-management/pkg/httpapi"
	"github.com/tair/inventory-management/pkg/logger"
)

const resource = "employee"

const (
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username already exists"
	msgLoginFailed        = "An error occurred during login"
	msgRegisterFailed     = "An error occurred during registration"
)

// CredentialsRequest is the body of login and registration
type CredentialsRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Message  string           `json:"message" example:"Login successful"`
	Employee *domain.Employee `json:"employee"`
}

// RegisterResponse is returned on a successful registration
type RegisterResponse struct {
	Message  string                      `json:"message" example:"Employee registered successfully"`
	Employee *command.RegisteredEmployee `json:"employee"`
}

// EmployeeHandler handles HTTP requests for employee authentication
type EmployeeHandler struct {
	loginHandler    *command.LoginEmployeeHandler
	registerHandler *command.RegisterEmployeeHandler
	metrics         *httpapi.Metrics
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(repo domain.EmployeeRepository, passwords domain.PasswordScheme, metrics *httpapi.Metrics) *EmployeeHandler {
	return &EmployeeHandler{
		loginHandler:    command.NewLoginEmployeeHandler(repo, passwords),
		registerHandler: command.NewRegisterEmployeeHandler(repo, passwords),
		metrics:         metrics,
	}
}

// RegisterRoutes registers the employee route table
func (h *EmployeeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/employees/login", h.metrics.Instrument(resource, "login", h.Login)).Methods(http.MethodPost)
	router.HandleFunc("/employees/register", h.metrics.Instrument(resource, "register", h.Register)).Methods(http.MethodPost)
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials. No session or token is issued.
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 401 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /employees/login [post]
func (h *EmployeeHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, httpapi.MessageInvalidBody)
		return
	}

	employee, err := h.loginHandler.Handle(r.Context(), command.LoginEmployeeCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if errors.Is(err, command.ErrInvalidCredentials) {
		logger.Warn(r.Context()).Str("username", req.Username).Msg("Login rejected")
		httpapi.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Login failed")
		httpapi.RespondError(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Employee: employee,
	})
}

// Register godoc
// @Summary Register an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /employees/register [post]
func (h *EmployeeHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, httpapi.MessageInvalidBody)
		return
	}

	registered, err := h.registerHandler.Handle(r.Context(), command.RegisterEmployeeCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if errors.Is(err, command.ErrUsernameTaken) {
		httpapi.RespondError(w, http.StatusBadRequest, msgUsernameTaken)
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Registration failed")
		httpapi.RespondError(w, http.StatusInternalServerError, msgRegisterFailed)
		return
	}

	logger.Info(r.Context()).Uint("employee_id", registered.EmployeeID).Msg("Employee registered")
	httpapi.RespondJSON(w, http.StatusCreated, RegisterResponse{
		Message:  "Employee registered successfully",
		Employee: registered,
	})
}
