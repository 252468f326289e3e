package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImageHandler holds dependencies for product-image handlers.
type ImageHandler struct {
	uc     usecase.ImageUsecase
	logger *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(uc usecase.ImageUsecase, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{uc: uc, logger: logger}
}

func imageIDParam(c echo.Context) (uuid.UUID, error) {
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid image ID")
	}

	return imageID, nil
}

// Upload handles a multipart image upload to a product the caller owns.
// The file travels in the "image" form field; its declared size and content
// type are checked before the bytes are forwarded to storage.
func (h *ImageHandler) Upload(c echo.Context) error {
	requesterID, productID, err := requesterAndProductID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	image, err := h.uc.UploadImage(c.Request().Context(), requesterID, productID, usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toImageResponse(image), "Image uploaded successfully")
}

// List returns the image records of a product the caller owns.
func (h *ImageHandler) List(c echo.Context) error {
	requesterID, productID, err := requesterAndProductID(c)
	if err != nil {
		return err
	}

	images, err := h.uc.ListImages(c.Request().Context(), requesterID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toImageResponses(images), "")
}

// Get returns one image record plus a presigned URL for its bytes.
func (h *ImageHandler) Get(c echo.Context) error {
	requesterID, productID, err := requesterAndProductID(c)
	if err != nil {
		return err
	}

	imageID, err := imageIDParam(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetImage(c.Request().Context(), requesterID, productID, imageID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := toImageResponse(output.Image)
	resp.URL = output.URL

	return response.Success(c, http.StatusOK, resp, "")
}

// Delete removes an image from a product the caller owns.
func (h *ImageHandler) Delete(c echo.Context) error {
	requesterID, productID, err := requesterAndProductID(c)
	if err != nil {
		return err
	}

	imageID, err := imageIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteImage(c.Request().Context(), requesterID, productID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted successfully")
}
