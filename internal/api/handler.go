package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gmarinho/stocklens/internal/domain/dto"
	"github.com/gmarinho/stocklens/internal/service"
)

// Handler provides HTTP handlers for the stock summary endpoints.
//
// Responsibilities:
//   - Validate incoming form fields and path parameters
//   - Delegate to the service layer for the lookup-or-compute flow
//   - Translate service results into response DTOs or HTML pages
type Handler struct {
	svc service.SummaryService
}

// NewHandler constructs a Handler with the service dependency
// injected.
func NewHandler(svc service.SummaryService) *Handler {
	return &Handler{svc: svc}
}

// Index handles GET / and renders the request form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Stock Data Analyzer",
	})
}

// Process handles POST /process requests.
//
// Form Fields:
//   - ticker (string, required): Stock ticker symbol (e.g., "AAPL").
//   - start_date (string, required): Range start in YYYY-MM-DD format.
//   - end_date (string, required): Range end in YYYY-MM-DD format.
//
// Responses:
//   - 200 OK: SummaryResponse; carries a message when the key was
//     already cached.
//   - 400 Bad Request: Missing/invalid fields, or no provider data.
//   - 500 Internal Server Error: Provider or database failure.
//
// Process godoc
// @Summary      Compute or return a cached stock summary
// @Description  Looks up (ticker, start_date, end_date); on a miss fetches daily closes, computes max/min/mean, and caches the result
// @Tags         stocks
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        ticker      formData  string  true  "Stock ticker"        example(AAPL)
// @Param        start_date  formData  string  true  "Start date YYYY-MM-DD" example(2023-01-01)
// @Param        end_date    formData  string  true  "End date YYYY-MM-DD"   example(2023-01-31)
// @Success      200  {object}  dto.SummaryResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /process [post]
func (h *Handler) Process(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.PostForm("ticker")))
	startDate := strings.TrimSpace(c.PostForm("start_date"))
	endDate := strings.TrimSpace(c.PostForm("end_date"))

	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start_date format, expected YYYY-MM-DD", err))
		return
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end_date format, expected YYYY-MM-DD", err))
		return
	}
	if start.After(end) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start_date must not be after end_date", nil))
		return
	}

	summary, cached, err := h.svc.GetOrCreateSummary(c.Request.Context(), ticker, startDate, endDate)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to process stock request", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(summary, cached))
}

// History handles GET /history and renders all cached summaries,
// most recent first.
//
// History godoc
// @Summary      List cached stock summaries
// @Description  Renders the history page with every cached summary, newest first
// @Tags         stocks
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /history [get]
func (h *Handler) History(c *gin.Context) {
	summaries, err := h.svc.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to load history", err))
		return
	}
	c.HTML(http.StatusOK, "history.html", gin.H{
		"Title":  "Stock Data History",
		"Stocks": summaries,
	})
}

// DeleteStock handles POST /delete_stock/:id. There is no existence
// check; the redirect happens whether or not a row was removed.
//
// DeleteStock godoc
// @Summary      Delete a cached summary
// @Description  Deletes the summary with the given id and redirects to the history page
// @Tags         stocks
// @Param        id   path  int  true  "Summary id"
// @Success      303  {string}  string  "Redirect to /history"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /delete_stock/{id} [post]
func (h *Handler) DeleteStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid id, expected an integer", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to delete stock summary", err))
		return
	}

	c.Redirect(http.StatusSeeOther, "/history")
}
