package reconcile

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	interf "github.com/glkeru/loyalty/reconcile/internal/interfaces"
	models "github.com/glkeru/loyalty/reconcile/internal/models"
	service "github.com/glkeru/loyalty/reconcile/internal/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ReconcileHandler struct {
	router *mux.Router
	rules  interf.RuleStorage
	ledger *service.LedgerService
	logger *zap.Logger
}

// ReconcileRequest - batch posted by the scraper, range is optional
type ReconcileRequest struct {
	From    string             `json:"from"`
	To      string             `json:"to"`
	Records []models.RawRecord `json:"records"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewHandler(rules interf.RuleStorage, ledger *service.LedgerService, logger *zap.Logger) *ReconcileHandler {
	router := mux.NewRouter()
	handler := &ReconcileHandler{router, rules, ledger, logger}
	router.Use(MiddlewareLog())
	router.HandleFunc("/reconcile", handler.ReconcileBatchHandler).Methods(http.MethodPost)
	router.HandleFunc("/reconcile/range", handler.ReconcileRangeHandler).Methods(http.MethodPost)
	router.HandleFunc("/ledger", handler.GetLedgerHandler).Methods(http.MethodGet)
	router.HandleFunc("/rules", handler.GetActiveRulesHandler).Methods(http.MethodGet)
	router.HandleFunc("/rules/all", handler.GetAllRulesHandler).Methods(http.MethodGet)
	router.HandleFunc("/rules", handler.SaveRulesHandler).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handler
}

func (r *ReconcileHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	r.router.ServeHTTP(w, res)
}

func (r *ReconcileHandler) Log(msg string, service string, err error) {
	r.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// reconcile service with the rules active right now
func (r *ReconcileHandler) service() (*service.LedgerService, error) {
	engine, err := service.NewReconcileService(r.rules, r.logger)
	if err != nil {
		return nil, err
	}
	return r.ledger.WithEngine(engine), nil
}

// Reconcile a posted batch
func (r *ReconcileHandler) ReconcileBatchHandler(w http.ResponseWriter, req *http.Request) {
	request := &ReconcileRequest{}
	if !r.decode(w, req, request, "ReconcileBatchHandler") {
		return
	}
	from, to, err := parseRange(request.From, request.To, false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	intake, err := service.NewIntake(from, to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	serv, err := r.service()
	if err != nil {
		r.Log("Service init", "ReconcileBatchHandler", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	ledger, err := serv.ReconcileBatch(req.Context(), request.Records, intake)
	if err != nil {
		r.Log("Reconcile", "ReconcileBatchHandler", err)
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ledger)
}

// Reconcile the stored scraper output for a date range
func (r *ReconcileHandler) ReconcileRangeHandler(w http.ResponseWriter, req *http.Request) {
	request := &ReconcileRequest{}
	if !r.decode(w, req, request, "ReconcileRangeHandler") {
		return
	}
	from, to, err := parseRange(request.From, request.To, true)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	serv, err := r.service()
	if err != nil {
		r.Log("Service init", "ReconcileRangeHandler", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	ledger, err := serv.RunRange(req.Context(), from, to)
	if err != nil {
		r.Log("Reconcile", "ReconcileRangeHandler", err)
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ledger)
}

// Latest ledger
func (r *ReconcileHandler) GetLedgerHandler(w http.ResponseWriter, req *http.Request) {
	ledger, err := r.ledger.Latest(req.Context())
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			r.Log("Get ledger", "GetLedgerHandler", err)
		}
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, ledger)
}

// Rules in effect, defaults when none is active
func (r *ReconcileHandler) GetActiveRulesHandler(w http.ResponseWriter, req *http.Request) {
	rules, err := r.rules.GetActiveRules(req.Context())
	if errors.Is(err, models.ErrNotFound) {
		rules, err = models.DefaultRules(), nil
	}
	if err != nil {
		r.Log("DB get", "GetActiveRulesHandler", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

func (r *ReconcileHandler) GetAllRulesHandler(w http.ResponseWriter, req *http.Request) {
	rules, err := r.rules.GetAllRules(req.Context())
	if err != nil {
		r.Log("DB get", "GetAllRulesHandler", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if rules == nil {
		writeError(w, http.StatusNotFound, models.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

// Create or update a rule set
func (r *ReconcileHandler) SaveRulesHandler(w http.ResponseWriter, req *http.Request) {
	rules := &models.BonusRules{}
	if !r.decode(w, req, rules, "SaveRulesHandler") {
		return
	}
	if err := rules.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := r.rules.SaveRules(req.Context(), *rules); err != nil {
		r.Log("SaveRules", "SaveRulesHandler", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *ReconcileHandler) decode(w http.ResponseWriter, req *http.Request, v any, service string) bool {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.Log("Get request body", service, err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return false
	}
	defer req.Body.Close()
	if err := json.Unmarshal(body, v); err != nil {
		r.Log("Unmarshal", service, err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return false
	}
	return true
}

func parseRange(from, to string, required bool) (f time.Time, t time.Time, err error) {
	if from == "" && to == "" && !required {
		return
	}
	if from == "" || to == "" {
		return f, t, models.ErrInvalidRange
	}
	if f, err = time.Parse(models.DateLayout, from); err != nil {
		return f, t, models.ErrInvalidRange
	}
	if t, err = time.Parse(models.DateLayout, to); err != nil {
		return f, t, models.ErrInvalidRange
	}
	return f, t, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnresolvableKind):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(j)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, &ErrorResponse{err.Error()})
}
