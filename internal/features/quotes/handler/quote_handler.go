package handler

import (
	"errors"
	"reflect"

	"freight-quoter/internal/core/logger"
	"freight-quoter/internal/features/quotes/domain"
	"freight-quoter/internal/features/quotes/ports"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// QuoteHandler handles HTTP requests for freight quotes.
type QuoteHandler struct {
	service  ports.QuoteService
	validate *validator.Validate
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})

	return &QuoteHandler{
		service:  service,
		validate: validate,
	}
}

// decimalValue lets numeric tags (gt, gte) run against decimal fields.
// The float is only compared; the request keeps the exact decimal.
func decimalValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case decimal.Decimal:
		return v.InexactFloat64()
	case decimal.NullDecimal:
		if !v.Valid {
			return nil
		}
		return v.Decimal.InexactFloat64()
	}
	return nil
}

// CreateQuoteRequest represents the request body for a quote.
type CreateQuoteRequest struct {
	// Origin is a city name, optionally "City - UF" or "City/UF".
	Origin       string `json:"origin" validate:"required" example:"Sorocaba - SP"`
	OriginRegion string `json:"origin_region,omitempty" validate:"omitempty,len=2" example:"SP"`
	// Destination has the same format as Origin.
	Destination       string `json:"destination" validate:"required" example:"Olinda - PE"`
	DestinationRegion string `json:"destination_region,omitempty" validate:"omitempty,len=2" example:"PE"`
	// Numbers may be sent as JSON numbers or strings; both are read exactly.
	WeightKg      decimal.Decimal     `json:"weight_kg" validate:"required,gt=0" swaggertype:"number" example:"42.5"`
	VolumeM3      decimal.Decimal     `json:"volume_m3,omitempty" validate:"gte=0" swaggertype:"number" example:"0.3"`
	DeclaredValue decimal.NullDecimal `json:"declared_value,omitempty" validate:"omitempty,gte=0" swaggertype:"number" example:"3500"`
}

func (r CreateQuoteRequest) toDomain() domain.QuoteRequest {
	return domain.QuoteRequest{
		OriginPlace:       r.Origin,
		OriginRegion:      r.OriginRegion,
		DestinationPlace:  r.Destination,
		DestinationRegion: r.DestinationRegion,
		ActualWeightKg:    r.WeightKg,
		VolumeM3:          r.VolumeM3,
		DeclaredValue:     r.DeclaredValue,
	}
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Info  string `json:"info"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
	// Details lists field validation failures.
	Details []FieldError `json:"details,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// CreateQuote godoc
// @Summary Quote a shipment
// @Description Resolves billable weight, prices every direct and hub-composed route in the active catalog and returns them ranked
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body CreateQuoteRequest true "Shipment"
// @Success 201 {object} domain.QuoteRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var body CreateQuoteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	if err := h.validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Validation failed",
			RayID:   rayID(c),
			Details: fieldErrors(err),
		})
	}

	record, err := h.service.CreateQuote(c.UserContext(), body.toDomain())
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			logger.Get().Error("Failed to create quote", zap.Error(err), zap.String("ray_id", rayID(c)))
		}
		return c.Status(status).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetQuote godoc
// @Summary Get an issued quote
// @Description Returns a quote from history while it has not expired
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} domain.QuoteRecord
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	record, err := h.service.GetQuote(c.UserContext(), c.Params("id"))
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			logger.Get().Error("Failed to get quote", zap.Error(err), zap.String("ray_id", rayID(c)))
		}
		return c.Status(status).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(record)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNoRouteFound), errors.Is(err, domain.ErrQuoteNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Info: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "len":
		return fe.Field() + " must have " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
