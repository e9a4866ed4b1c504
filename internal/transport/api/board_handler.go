package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

const (
	maxThumbnails = 10
	maxImageSize  = 10 << 20
)

type BoardHandler struct {
	boardSvs BoardServicer
}

func NewBoardHandler(boardSvs BoardServicer) *BoardHandler {
	return &BoardHandler{
		boardSvs: boardSvs,
	}
}

// CreateBoardParams поля multipart формы. Products - JSON массив ProductParams.
type CreateBoardParams struct {
	Title     string    `binding:"required,max_bytes=255"    form:"title"`
	Content   string    `binding:"max_bytes=65535"           form:"content"`
	StartedAt time.Time `binding:"required"                  form:"startedAt" time_format:"2006-01-02T15:04:05Z07:00"`
	EndedAt   time.Time `binding:"required,gtfield=StartedAt" form:"endedAt"   time_format:"2006-01-02T15:04:05Z07:00"`
	Products  string    `binding:"required"                  form:"products"`
}

type ProductParams struct {
	Name  string          `binding:"required,max_bytes=255" json:"name"`
	Price decimal.Decimal `binding:"gte=0"                  json:"price"`
	Stock int64           `binding:"gte=0"                  json:"stock"`
}

type productsParams struct {
	Items []ProductParams `binding:"required,min=1,max=100,dive"`
}

type ProductResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

type BoardResponse struct {
	ID           int64                  `json:"id"`
	CompanyID    int64                  `json:"companyId"`
	Title        string                 `json:"title"`
	Content      string                 `json:"content"`
	ThumbnailURL string                 `json:"thumbnailUrl"`
	DetailURL    string                 `json:"detailUrl"`
	Status       domain.BoardStatusType `json:"status"`
	StartedAt    time.Time              `json:"startedAt"`
	EndedAt      time.Time              `json:"endedAt"`
	Thumbnails   []string               `json:"thumbnails"`
	Products     []ProductResponse      `json:"products"`
}

var errTooManyImages = fmt.Errorf("at most %d thumbnails allowed", maxThumbnails)

// Create POST RouteGroup + BoardsRoute. Доступно только компаниям, доска создается от имени компании
// из токена.
func (h *BoardHandler) Create(c *gin.Context) {
	var params CreateBoardParams
	if bindErr := c.ShouldBindWith(&params, binding.FormMultipart); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	var products productsParams
	if jsonErr := json.Unmarshal([]byte(params.Products), &products.Items); jsonErr != nil {
		abortWithBindError(c, fmt.Errorf("products: %w", jsonErr))
		return
	}
	if valErr := binding.Validator.ValidateStruct(&products); valErr != nil {
		abortWithBindError(c, valErr)
		return
	}

	thumbnails, detail, filesErr := formImages(c)
	if filesErr != nil {
		if errors.Is(filesErr, errTooManyImages) {
			_ = c.AbortWithError(http.StatusBadRequest, filesErr).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusRequestEntityTooLarge, filesErr).SetType(gin.ErrorTypePublic)
		return
	}

	args := service.CreateBoardArgs{
		Title:     params.Title,
		Content:   params.Content,
		StartedAt: params.StartedAt,
		EndedAt:   params.EndedAt,
		Products:  make([]service.CreateProductArgs, len(products.Items)),
	}
	for i, p := range products.Items {
		args.Products[i] = service.CreateProductArgs{Name: p.Name, Price: p.Price, Stock: p.Stock}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultUploadTimeout)
	defer cancel()

	board, err := h.boardSvs.Create(reqCtx, getUserIDFromContext(c), args, thumbnails, detail)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": board.ID})
}

// Show GET RouteGroup + BoardRoute.
func (h *BoardHandler) Show(c *gin.Context) {
	boardID, ok := paramID(c, "boardID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.boardSvs.Get(reqCtx, boardID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	board := details.Board
	response := BoardResponse{
		ID:           board.ID,
		CompanyID:    board.CompanyID,
		Title:        board.Title,
		Content:      board.Content,
		ThumbnailURL: board.ThumbnailURL,
		DetailURL:    board.DetailURL,
		Status:       board.Status,
		StartedAt:    board.StartedAt,
		EndedAt:      board.EndedAt,
		Thumbnails:   make([]string, len(details.Thumbnails)),
		Products:     make([]ProductResponse, len(details.Products)),
	}
	for i, t := range details.Thumbnails {
		response.Thumbnails[i] = t.URL
	}
	for i, p := range details.Products {
		response.Products[i] = ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
	}

	c.JSON(http.StatusOK, response)
}

// formImages собирает изображения из полей thumbnails (несколько) и detail (одно, необязательное).
func formImages(c *gin.Context) ([]domain.File, domain.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domain.File{}, fmt.Errorf("multipart form: %w", err)
	}

	headers := form.File["thumbnails"]
	if len(headers) > maxThumbnails {
		return nil, domain.File{}, errTooManyImages
	}
	thumbnails := make([]domain.File, 0, len(headers))
	for _, fh := range headers {
		f, fileErr := toFile(fh)
		if fileErr != nil {
			return nil, domain.File{}, fileErr
		}
		thumbnails = append(thumbnails, f)
	}

	var detail domain.File
	if details := form.File["detail"]; len(details) > 0 {
		if detail, err = toFile(details[0]); err != nil {
			return nil, domain.File{}, err
		}
	}
	return thumbnails, detail, nil
}

func toFile(fh *multipart.FileHeader) (domain.File, error) {
	if fh.Size > maxImageSize {
		return domain.File{}, fmt.Errorf("image `%s` is larger than %d bytes", fh.Filename, maxImageSize)
	}
	return domain.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open() //nolint:wrapcheck
		},
	}, nil
}
