package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/constants"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/db"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/helpers"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/interfaces"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/services"
	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/types/business"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db db.Querier
	// dbPool is kept separate for transaction support
	dbPool *pgxpool.Pool
	logger *zap.Logger

	ComputationService interfaces.ComputationService
	FormService        interfaces.FormService
	LinkerService      interfaces.LinkerService
	RateService        interfaces.RateService
	WealthService      interfaces.WealthService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB     db.Querier
	DBPool *pgxpool.Pool // Optional: for transaction support
	Logger *zap.Logger

	ComputationService interfaces.ComputationService
	FormService        interfaces.FormService
	LinkerService      interfaces.LinkerService
	RateService        interfaces.RateService
	WealthService      interfaces.WealthService
}

// NewCommonServices creates a new instance of CommonServices with interface dependencies
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		db:                 config.DB,
		dbPool:             config.DBPool,
		logger:             config.Logger,
		ComputationService: config.ComputationService,
		FormService:        config.FormService,
		LinkerService:      config.LinkerService,
		RateService:        config.RateService,
		WealthService:      config.WealthService,
	}
}

// NewCommonServicesWithPool wires the concrete service graph over a
// database pool. This is the production constructor.
func NewCommonServicesWithPool(queries *db.Queries, pool *pgxpool.Pool) *CommonServices {
	calc := services.NewCalculationService()
	linker := services.NewLinkerService(queries, calc)
	rates := services.NewRateService(queries)
	computation := services.NewComputationService(queries, calc, linker, rates)

	return &CommonServices{
		db:                 queries,
		dbPool:             pool,
		logger:             logger.Log,
		ComputationService: computation,
		FormService:        services.NewFormService(queries, calc),
		LinkerService:      linker,
		RateService:        rates,
		WealthService:      services.NewWealthService(queries, computation),
	}
}

// GetDB returns the database querier
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// taxYearParam returns the :taxYear path parameter, defaulting when
// the route allows omission.
func taxYearParam(c *gin.Context) string {
	taxYear := c.Param("taxYear")
	if taxYear == "" {
		return constants.DefaultTaxYear
	}
	return taxYear
}

// returnIDQuery reads and parses the mandatory return_id query
// parameter. On failure it writes the 400 response and returns false.
func returnIDQuery(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("return_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "return_id query parameter is required"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "return_id must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// filerStatusQuery reads the optional filer_status query parameter,
// defaulting to filer.
func filerStatusQuery(c *gin.Context) (business.FilerStatus, bool) {
	switch c.DefaultQuery("filer_status", constants.FilerStatusFiler) {
	case constants.FilerStatusFiler:
		return business.Filer, true
	case constants.FilerStatusNonFiler:
		return business.NonFiler, true
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "filer_status must be filer or non_filer"})
		return "", false
	}
}

// respondServiceError maps the service error taxonomy onto HTTP
// statuses: validation 400, missing data 404, write conflict 409,
// configuration 500 (operational defect, not a user error).
func respondServiceError(c *gin.Context, err error) {
	var verrs *services.FormValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs.Errors))
		for _, ferr := range verrs.Errors {
			var verr *helpers.ValidationError
			if errors.As(ferr, &verr) {
				fields = append(fields, verr.Field)
			}
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verrs.Error(), Fields: fields})
		return
	}

	var missing *services.MissingDataError
	if errors.As(err, &missing) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: missing.Error()})
		return
	}

	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflict.Error()})
		return
	}

	var config *services.ConfigurationError
	if errors.As(err, &config) {
		logger.Log.Error("Rate configuration error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: config.Error()})
		return
	}

	logger.Log.Error("Unhandled service error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
